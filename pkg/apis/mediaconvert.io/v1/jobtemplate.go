package v1

import (
	"time"
)

type JobTemplateListBy string

const (
	JobTemplateListByName         JobTemplateListBy = "NAME"
	JobTemplateListByCreationDate JobTemplateListBy = "CREATION_DATE"
	JobTemplateListBySystem       JobTemplateListBy = "SYSTEM"
)

// JobTemplate is a reusable set of job settings. Jobs created from a template may override parts of
// it.
type JobTemplate struct {
	AccelerationSettings *AccelerationSettings `json:"accelerationSettings,omitempty"`
	Arn                  *string               `json:"arn,omitempty"`
	Category             *string               `json:"category,omitempty"`
	CreatedAt            *time.Time            `json:"createdAt,omitempty"`
	Description          *string               `json:"description,omitempty"`
	HopDestinations      []*HopDestination     `json:"hopDestinations,omitempty"`
	LastUpdated          *time.Time            `json:"lastUpdated,omitempty"`
	Name                 *string               `json:"name,omitempty"`

	// Priority ranges from -50 to 50 on the service side; higher runs first.
	Priority *int64 `json:"priority,omitempty"`

	Queue                *string               `json:"queue,omitempty"`
	Settings             *JobTemplateSettings  `json:"settings,omitempty"`
	StatusUpdateInterval *StatusUpdateInterval `json:"statusUpdateInterval,omitempty"`
	Type                 *Type                 `json:"type,omitempty"`
}

// JobTemplateSettings mirrors JobSettings, with inputs that carry no file location.
type JobTemplateSettings struct {
	AdAvailOffset          *int64                  `json:"adAvailOffset,omitempty"`
	AvailBlanking          *AvailBlanking          `json:"availBlanking,omitempty"`
	Inputs                 []*InputTemplate        `json:"inputs,omitempty"`
	OutputGroups           []*OutputGroup          `json:"outputGroups,omitempty"`
	TimecodeConfig         *TimecodeConfig         `json:"timecodeConfig,omitempty"`
	TimedMetadataInsertion *TimedMetadataInsertion `json:"timedMetadataInsertion,omitempty"`
}

// InputTemplate is an Input without FileInput.
type InputTemplate struct {
	AudioSelectors   map[string]*AudioSelector   `json:"audioSelectors,omitempty"`
	CaptionSelectors map[string]*CaptionSelector `json:"captionSelectors,omitempty"`
	DeblockFilter    *InputDeblockFilter         `json:"deblockFilter,omitempty"`
	DenoiseFilter    *InputDenoiseFilter         `json:"denoiseFilter,omitempty"`
	FilterEnable     *InputFilterEnable          `json:"filterEnable,omitempty"`
	FilterStrength   *int64                      `json:"filterStrength,omitempty"`
	InputClippings   []*InputClipping            `json:"inputClippings,omitempty"`
	PsiControl       *InputPsiControl            `json:"psiControl,omitempty"`
	TimecodeSource   *InputTimecodeSource        `json:"timecodeSource,omitempty"`
	TimecodeStart    *string                     `json:"timecodeStart,omitempty"`
	VideoSelector    *VideoSelector              `json:"videoSelector,omitempty"`
}

type CreateJobTemplateRequest struct {
	RequestBase `json:"-"`

	AccelerationSettings *AccelerationSettings `json:"accelerationSettings,omitempty"`
	Category             *string               `json:"category,omitempty"`
	Description          *string               `json:"description,omitempty"`
	HopDestinations      []*HopDestination     `json:"hopDestinations,omitempty"`
	Name                 *string               `json:"name,omitempty"`
	Priority             *int64                `json:"priority,omitempty"`
	Queue                *string               `json:"queue,omitempty"`
	Settings             *JobTemplateSettings  `json:"settings,omitempty"`
	StatusUpdateInterval *StatusUpdateInterval `json:"statusUpdateInterval,omitempty"`
	Tags                 map[string]string     `json:"tags,omitempty"`
}

type CreateJobTemplateResult struct {
	ResponseMetadata `json:"-"`

	JobTemplate *JobTemplate `json:"jobTemplate,omitempty"`
}

type GetJobTemplateRequest struct {
	RequestBase `json:"-"`

	Name *string `json:"name,omitempty"`
}

type GetJobTemplateResult struct {
	ResponseMetadata `json:"-"`

	JobTemplate *JobTemplate `json:"jobTemplate,omitempty"`
}

type UpdateJobTemplateRequest struct {
	RequestBase `json:"-"`

	AccelerationSettings *AccelerationSettings `json:"accelerationSettings,omitempty"`
	Category             *string               `json:"category,omitempty"`
	Description          *string               `json:"description,omitempty"`
	HopDestinations      []*HopDestination     `json:"hopDestinations,omitempty"`
	Name                 *string               `json:"name,omitempty"`
	Priority             *int64                `json:"priority,omitempty"`
	Queue                *string               `json:"queue,omitempty"`
	Settings             *JobTemplateSettings  `json:"settings,omitempty"`
	StatusUpdateInterval *StatusUpdateInterval `json:"statusUpdateInterval,omitempty"`
}

type UpdateJobTemplateResult struct {
	ResponseMetadata `json:"-"`

	JobTemplate *JobTemplate `json:"jobTemplate,omitempty"`
}

type DeleteJobTemplateRequest struct {
	RequestBase `json:"-"`

	Name *string `json:"name,omitempty"`
}

type DeleteJobTemplateResult struct {
	ResponseMetadata `json:"-"`
}

type ListJobTemplatesRequest struct {
	RequestBase `json:"-"`

	Category   *string            `json:"category,omitempty"`
	ListBy     *JobTemplateListBy `json:"listBy,omitempty"`
	MaxResults *int64             `json:"maxResults,omitempty"`
	NextToken  *string            `json:"nextToken,omitempty"`
	Order      *Order             `json:"order,omitempty"`
}

type ListJobTemplatesResult struct {
	ResponseMetadata `json:"-"`

	JobTemplates []*JobTemplate `json:"jobTemplates,omitempty"`
	NextToken    *string        `json:"nextToken,omitempty"`
}
