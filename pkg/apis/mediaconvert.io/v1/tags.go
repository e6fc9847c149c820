package v1

type DescribeEndpointsMode string

const (
	DescribeEndpointsModeDefault DescribeEndpointsMode = "DEFAULT"
	DescribeEndpointsModeGetOnly DescribeEndpointsMode = "GET_ONLY"
)

// ResourceTags lists the tags of a queue, preset or job template.
type ResourceTags struct {
	Arn  *string           `json:"arn,omitempty"`
	Tags map[string]string `json:"tags,omitempty"`
}

type TagResourceRequest struct {
	RequestBase `json:"-"`

	Arn  *string           `json:"arn,omitempty"`
	Tags map[string]string `json:"tags,omitempty"`
}

type TagResourceResult struct {
	ResponseMetadata `json:"-"`
}

type UntagResourceRequest struct {
	RequestBase `json:"-"`

	Arn     *string  `json:"arn,omitempty"`
	TagKeys []string `json:"tagKeys,omitempty"`
}

type UntagResourceResult struct {
	ResponseMetadata `json:"-"`
}

type ListTagsForResourceRequest struct {
	RequestBase `json:"-"`

	Arn *string `json:"arn,omitempty"`
}

type ListTagsForResourceResult struct {
	ResponseMetadata `json:"-"`

	ResourceTags *ResourceTags `json:"resourceTags,omitempty"`
}

// Endpoint is an account specific service endpoint.
type Endpoint struct {
	Url *string `json:"url,omitempty"`
}

type DescribeEndpointsRequest struct {
	RequestBase `json:"-"`

	MaxResults *int64                 `json:"maxResults,omitempty"`
	Mode       *DescribeEndpointsMode `json:"mode,omitempty"`
	NextToken  *string                `json:"nextToken,omitempty"`
}

type DescribeEndpointsResult struct {
	ResponseMetadata `json:"-"`

	Endpoints []*Endpoint `json:"endpoints,omitempty"`
	NextToken *string     `json:"nextToken,omitempty"`
}
