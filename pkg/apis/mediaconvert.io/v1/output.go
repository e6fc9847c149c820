package v1

type OutputGroupType string

const (
	OutputGroupTypeHlsGroupSettings      OutputGroupType = "HLS_GROUP_SETTINGS"
	OutputGroupTypeDashIsoGroupSettings  OutputGroupType = "DASH_ISO_GROUP_SETTINGS"
	OutputGroupTypeFileGroupSettings     OutputGroupType = "FILE_GROUP_SETTINGS"
	OutputGroupTypeMsSmoothGroupSettings OutputGroupType = "MS_SMOOTH_GROUP_SETTINGS"
	OutputGroupTypeCmafGroupSettings     OutputGroupType = "CMAF_GROUP_SETTINGS"
)

type HlsManifestDurationFormat string

const (
	HlsManifestDurationFormatFloatingPoint HlsManifestDurationFormat = "FLOATING_POINT"
	HlsManifestDurationFormatInteger       HlsManifestDurationFormat = "INTEGER"
)

type HlsSegmentControl string

const (
	HlsSegmentControlSingleFile     HlsSegmentControl = "SINGLE_FILE"
	HlsSegmentControlSegmentedFiles HlsSegmentControl = "SEGMENTED_FILES"
)

type DashIsoSegmentControl string

const (
	DashIsoSegmentControlSingleFile     DashIsoSegmentControl = "SINGLE_FILE"
	DashIsoSegmentControlSegmentedFiles DashIsoSegmentControl = "SEGMENTED_FILES"
)

type CmafSegmentControl string

const (
	CmafSegmentControlSingleFile     CmafSegmentControl = "SINGLE_FILE"
	CmafSegmentControlSegmentedFiles CmafSegmentControl = "SEGMENTED_FILES"
)

type ContainerType string

const (
	ContainerTypeF4v  ContainerType = "F4V"
	ContainerTypeIsmv ContainerType = "ISMV"
	ContainerTypeM2ts ContainerType = "M2TS"
	ContainerTypeM3u8 ContainerType = "M3U8"
	ContainerTypeCmfc ContainerType = "CMFC"
	ContainerTypeMov  ContainerType = "MOV"
	ContainerTypeMp4  ContainerType = "MP4"
	ContainerTypeMpd  ContainerType = "MPD"
	ContainerTypeMxf  ContainerType = "MXF"
	ContainerTypeWebm ContainerType = "WEBM"
	ContainerTypeRaw  ContainerType = "RAW"
)

type Mp4CslgAtom string

const (
	Mp4CslgAtomInclude Mp4CslgAtom = "INCLUDE"
	Mp4CslgAtomExclude Mp4CslgAtom = "EXCLUDE"
)

type Mp4FreeSpaceBox string

const (
	Mp4FreeSpaceBoxInclude Mp4FreeSpaceBox = "INCLUDE"
	Mp4FreeSpaceBoxExclude Mp4FreeSpaceBox = "EXCLUDE"
)

type Mp4MoovPlacement string

const (
	Mp4MoovPlacementProgressiveDownload Mp4MoovPlacement = "PROGRESSIVE_DOWNLOAD"
	Mp4MoovPlacementNormal              Mp4MoovPlacement = "NORMAL"
)

type M2tsRateMode string

const (
	M2tsRateModeVbr M2tsRateMode = "VBR"
	M2tsRateModeCbr M2tsRateMode = "CBR"
)

type M2tsAudioBufferModel string

const (
	M2tsAudioBufferModelDvb  M2tsAudioBufferModel = "DVB"
	M2tsAudioBufferModelAtsc M2tsAudioBufferModel = "ATSC"
)

// OutputGroup is a set of outputs packaged the same way, e.g. one HLS ladder.
type OutputGroup struct {
	CustomName          *string              `json:"customName,omitempty"`
	Name                *string              `json:"name,omitempty"`
	OutputGroupSettings *OutputGroupSettings `json:"outputGroupSettings,omitempty"`
	Outputs             []*Output            `json:"outputs,omitempty"`
}

// OutputGroupSettings carries the settings of the group kind named by Type. Only that member is
// expected to be set.
type OutputGroupSettings struct {
	CmafGroupSettings    *CmafGroupSettings    `json:"cmafGroupSettings,omitempty"`
	DashIsoGroupSettings *DashIsoGroupSettings `json:"dashIsoGroupSettings,omitempty"`
	FileGroupSettings    *FileGroupSettings    `json:"fileGroupSettings,omitempty"`
	HlsGroupSettings     *HlsGroupSettings     `json:"hlsGroupSettings,omitempty"`
	Type                 *OutputGroupType      `json:"type,omitempty"`
}

type FileGroupSettings struct {
	Destination *string `json:"destination,omitempty"`
}

type HlsGroupSettings struct {
	Destination            *string                    `json:"destination,omitempty"`
	ManifestDurationFormat *HlsManifestDurationFormat `json:"manifestDurationFormat,omitempty"`
	MinSegmentLength       *int64                     `json:"minSegmentLength,omitempty"`
	SegmentControl         *HlsSegmentControl         `json:"segmentControl,omitempty"`

	// SegmentLength is in seconds.
	SegmentLength *int64 `json:"segmentLength,omitempty"`

	SegmentsPerSubdirectory *int64 `json:"segmentsPerSubdirectory,omitempty"`
}

type DashIsoGroupSettings struct {
	Destination    *string                `json:"destination,omitempty"`
	FragmentLength *int64                 `json:"fragmentLength,omitempty"`
	SegmentControl *DashIsoSegmentControl `json:"segmentControl,omitempty"`
	SegmentLength  *int64                 `json:"segmentLength,omitempty"`
}

type CmafGroupSettings struct {
	Destination    *string             `json:"destination,omitempty"`
	FragmentLength *int64              `json:"fragmentLength,omitempty"`
	SegmentControl *CmafSegmentControl `json:"segmentControl,omitempty"`
	SegmentLength  *int64              `json:"segmentLength,omitempty"`
}

// Output is one rendition inside an output group.
type Output struct {
	AudioDescriptions   []*AudioDescription   `json:"audioDescriptions,omitempty"`
	CaptionDescriptions []*CaptionDescription `json:"captionDescriptions,omitempty"`
	ContainerSettings   *ContainerSettings    `json:"containerSettings,omitempty"`
	Extension           *string               `json:"extension,omitempty"`

	// NameModifier is appended to the input file name to build the output file name.
	NameModifier *string `json:"nameModifier,omitempty"`

	Preset           *string           `json:"preset,omitempty"`
	VideoDescription *VideoDescription `json:"videoDescription,omitempty"`
}

type ContainerSettings struct {
	Container    *ContainerType `json:"container,omitempty"`
	M2tsSettings *M2tsSettings  `json:"m2tsSettings,omitempty"`
	Mp4Settings  *Mp4Settings   `json:"mp4Settings,omitempty"`
}

type Mp4Settings struct {
	CslgAtom      *Mp4CslgAtom      `json:"cslgAtom,omitempty"`
	FreeSpaceBox  *Mp4FreeSpaceBox  `json:"freeSpaceBox,omitempty"`
	MoovPlacement *Mp4MoovPlacement `json:"moovPlacement,omitempty"`
	Mp4MajorBrand *string           `json:"mp4MajorBrand,omitempty"`
}

type M2tsSettings struct {
	AudioBufferModel *M2tsAudioBufferModel `json:"audioBufferModel,omitempty"`
	AudioPids        []int64               `json:"audioPids,omitempty"`
	Bitrate          *int64                `json:"bitrate,omitempty"`
	PatInterval      *int64                `json:"patInterval,omitempty"`
	PmtPid           *int64                `json:"pmtPid,omitempty"`
	RateMode         *M2tsRateMode         `json:"rateMode,omitempty"`
	VideoPid         *int64                `json:"videoPid,omitempty"`
}
