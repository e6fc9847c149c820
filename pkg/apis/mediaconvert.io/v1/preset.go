package v1

import (
	"time"
)

type PresetListBy string

const (
	PresetListByName         PresetListBy = "NAME"
	PresetListByCreationDate PresetListBy = "CREATION_DATE"
	PresetListBySystem       PresetListBy = "SYSTEM"
)

// Preset is a reusable set of output settings.
type Preset struct {
	Arn         *string         `json:"arn,omitempty"`
	Category    *string         `json:"category,omitempty"`
	CreatedAt   *time.Time      `json:"createdAt,omitempty"`
	Description *string         `json:"description,omitempty"`
	LastUpdated *time.Time      `json:"lastUpdated,omitempty"`
	Name        *string         `json:"name,omitempty"`
	Settings    *PresetSettings `json:"settings,omitempty"`
	Type        *Type           `json:"type,omitempty"`
}

// PresetSettings holds the output settings a preset applies.
type PresetSettings struct {
	AudioDescriptions   []*AudioDescription         `json:"audioDescriptions,omitempty"`
	CaptionDescriptions []*CaptionDescriptionPreset `json:"captionDescriptions,omitempty"`
	ContainerSettings   *ContainerSettings          `json:"containerSettings,omitempty"`
	VideoDescription    *VideoDescription           `json:"videoDescription,omitempty"`
}

// CaptionDescriptionPreset is a CaptionDescription without the selector, which is only known per
// job.
type CaptionDescriptionPreset struct {
	CustomLanguageCode  *string                     `json:"customLanguageCode,omitempty"`
	DestinationSettings *CaptionDestinationSettings `json:"destinationSettings,omitempty"`
	LanguageCode        *LanguageCode               `json:"languageCode,omitempty"`
	LanguageDescription *string                     `json:"languageDescription,omitempty"`
}

type CreatePresetRequest struct {
	RequestBase `json:"-"`

	Category    *string           `json:"category,omitempty"`
	Description *string           `json:"description,omitempty"`
	Name        *string           `json:"name,omitempty"`
	Settings    *PresetSettings   `json:"settings,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
}

type CreatePresetResult struct {
	ResponseMetadata `json:"-"`

	Preset *Preset `json:"preset,omitempty"`
}

type GetPresetRequest struct {
	RequestBase `json:"-"`

	Name *string `json:"name,omitempty"`
}

type GetPresetResult struct {
	ResponseMetadata `json:"-"`

	Preset *Preset `json:"preset,omitempty"`
}

type UpdatePresetRequest struct {
	RequestBase `json:"-"`

	Category    *string         `json:"category,omitempty"`
	Description *string         `json:"description,omitempty"`
	Name        *string         `json:"name,omitempty"`
	Settings    *PresetSettings `json:"settings,omitempty"`
}

type UpdatePresetResult struct {
	ResponseMetadata `json:"-"`

	Preset *Preset `json:"preset,omitempty"`
}

type DeletePresetRequest struct {
	RequestBase `json:"-"`

	Name *string `json:"name,omitempty"`
}

type DeletePresetResult struct {
	ResponseMetadata `json:"-"`
}

type ListPresetsRequest struct {
	RequestBase `json:"-"`

	Category   *string       `json:"category,omitempty"`
	ListBy     *PresetListBy `json:"listBy,omitempty"`
	MaxResults *int64        `json:"maxResults,omitempty"`
	NextToken  *string       `json:"nextToken,omitempty"`
	Order      *Order        `json:"order,omitempty"`
}

type ListPresetsResult struct {
	ResponseMetadata `json:"-"`

	NextToken *string   `json:"nextToken,omitempty"`
	Presets   []*Preset `json:"presets,omitempty"`
}
