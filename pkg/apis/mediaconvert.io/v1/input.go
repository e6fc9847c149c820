package v1

type InputDeblockFilter string

const (
	InputDeblockFilterEnabled  InputDeblockFilter = "ENABLED"
	InputDeblockFilterDisabled InputDeblockFilter = "DISABLED"
)

type InputDenoiseFilter string

const (
	InputDenoiseFilterEnabled  InputDenoiseFilter = "ENABLED"
	InputDenoiseFilterDisabled InputDenoiseFilter = "DISABLED"
)

type InputFilterEnable string

const (
	InputFilterEnableAuto    InputFilterEnable = "AUTO"
	InputFilterEnableDisable InputFilterEnable = "DISABLE"
	InputFilterEnableForce   InputFilterEnable = "FORCE"
)

type InputPsiControl string

const (
	InputPsiControlIgnorePsi InputPsiControl = "IGNORE_PSI"
	InputPsiControlUsePsi    InputPsiControl = "USE_PSI"
)

type InputTimecodeSource string

const (
	InputTimecodeSourceEmbedded       InputTimecodeSource = "EMBEDDED"
	InputTimecodeSourceZerobased      InputTimecodeSource = "ZEROBASED"
	InputTimecodeSourceSpecifiedstart InputTimecodeSource = "SPECIFIEDSTART"
)

type InputRotate string

const (
	InputRotateDegree0    InputRotate = "DEGREE_0"
	InputRotateDegrees90  InputRotate = "DEGREES_90"
	InputRotateDegrees180 InputRotate = "DEGREES_180"
	InputRotateDegrees270 InputRotate = "DEGREES_270"
	InputRotateAuto       InputRotate = "AUTO"
)

type ColorSpace string

const (
	ColorSpaceFollow   ColorSpace = "FOLLOW"
	ColorSpaceRec601   ColorSpace = "REC_601"
	ColorSpaceRec709   ColorSpace = "REC_709"
	ColorSpaceHdr10    ColorSpace = "HDR10"
	ColorSpaceHlg2020  ColorSpace = "HLG_2020"
	ColorSpaceP3dci    ColorSpace = "P3DCI"
	ColorSpaceP3d65Sdr ColorSpace = "P3D65_SDR"
	ColorSpaceP3d65Hdr ColorSpace = "P3D65_HDR"
)

type AudioDefaultSelection string

const (
	AudioDefaultSelectionDefault    AudioDefaultSelection = "DEFAULT"
	AudioDefaultSelectionNotDefault AudioDefaultSelection = "NOT_DEFAULT"
)

// AudioSelectorType picks how an AudioSelector finds its audio: by PID, track, language or
// rendition group.
type AudioSelectorType string

const (
	AudioSelectorTypePid               AudioSelectorType = "PID"
	AudioSelectorTypeTrack             AudioSelectorType = "TRACK"
	AudioSelectorTypeLanguageCode      AudioSelectorType = "LANGUAGE_CODE"
	AudioSelectorTypeHlsRenditionGroup AudioSelectorType = "HLS_RENDITION_GROUP"
	AudioSelectorTypeAllPcm            AudioSelectorType = "ALL_PCM"
)

type CaptionSourceType string

const (
	CaptionSourceTypeAncillary  CaptionSourceType = "ANCILLARY"
	CaptionSourceTypeDvbSub     CaptionSourceType = "DVB_SUB"
	CaptionSourceTypeEmbedded   CaptionSourceType = "EMBEDDED"
	CaptionSourceTypeScte20     CaptionSourceType = "SCTE20"
	CaptionSourceTypeScc        CaptionSourceType = "SCC"
	CaptionSourceTypeTtml       CaptionSourceType = "TTML"
	CaptionSourceTypeStl        CaptionSourceType = "STL"
	CaptionSourceTypeSrt        CaptionSourceType = "SRT"
	CaptionSourceTypeSmi        CaptionSourceType = "SMI"
	CaptionSourceTypeSmpteTt    CaptionSourceType = "SMPTE_TT"
	CaptionSourceTypeTeletext   CaptionSourceType = "TELETEXT"
	CaptionSourceTypeNullSource CaptionSourceType = "NULL_SOURCE"
	CaptionSourceTypeImsc       CaptionSourceType = "IMSC"
	CaptionSourceTypeWebvtt     CaptionSourceType = "WEBVTT"
)

type EmbeddedConvert608To708 string

const (
	EmbeddedConvert608To708Upconvert EmbeddedConvert608To708 = "UPCONVERT"
	EmbeddedConvert608To708Disabled  EmbeddedConvert608To708 = "DISABLED"
)

type FileSourceConvert608To708 string

const (
	FileSourceConvert608To708Upconvert FileSourceConvert608To708 = "UPCONVERT"
	FileSourceConvert608To708Disabled  FileSourceConvert608To708 = "DISABLED"
)

// Input is a source file of a job and the way its tracks are selected.
type Input struct {
	// AudioSelectors is keyed by selector name, e.g. "Audio Selector 1". Outputs refer to selectors by
	// that name.
	AudioSelectors map[string]*AudioSelector `json:"audioSelectors,omitempty"`

	CaptionSelectors map[string]*CaptionSelector `json:"captionSelectors,omitempty"`
	DeblockFilter    *InputDeblockFilter         `json:"deblockFilter,omitempty"`
	DenoiseFilter    *InputDenoiseFilter         `json:"denoiseFilter,omitempty"`

	// FileInput is an s3://, http:// or https:// location.
	FileInput *string `json:"fileInput,omitempty"`

	FilterEnable   *InputFilterEnable   `json:"filterEnable,omitempty"`
	FilterStrength *int64               `json:"filterStrength,omitempty"`
	InputClippings []*InputClipping     `json:"inputClippings,omitempty"`
	PsiControl     *InputPsiControl     `json:"psiControl,omitempty"`
	TimecodeSource *InputTimecodeSource `json:"timecodeSource,omitempty"`
	TimecodeStart  *string              `json:"timecodeStart,omitempty"`
	VideoSelector  *VideoSelector       `json:"videoSelector,omitempty"`
}

// InputClipping keeps the part of an input between two timecodes.
type InputClipping struct {
	EndTimecode   *string `json:"endTimecode,omitempty"`
	StartTimecode *string `json:"startTimecode,omitempty"`
}

type VideoSelector struct {
	ColorSpace    *ColorSpace  `json:"colorSpace,omitempty"`
	Pid           *int64       `json:"pid,omitempty"`
	ProgramNumber *int64       `json:"programNumber,omitempty"`
	Rotate        *InputRotate `json:"rotate,omitempty"`
}

type AudioSelector struct {
	CustomLanguageCode     *string                `json:"customLanguageCode,omitempty"`
	DefaultSelection       *AudioDefaultSelection `json:"defaultSelection,omitempty"`
	ExternalAudioFileInput *string                `json:"externalAudioFileInput,omitempty"`
	LanguageCode           *LanguageCode          `json:"languageCode,omitempty"`

	// Offset is in milliseconds.
	Offset *int64 `json:"offset,omitempty"`

	Pids             []int64            `json:"pids,omitempty"`
	ProgramSelection *int64             `json:"programSelection,omitempty"`
	SelectorType     *AudioSelectorType `json:"selectorType,omitempty"`

	// Tracks are 1-based.
	Tracks []int64 `json:"tracks,omitempty"`
}

type CaptionSelector struct {
	CustomLanguageCode *string                `json:"customLanguageCode,omitempty"`
	LanguageCode       *LanguageCode          `json:"languageCode,omitempty"`
	SourceSettings     *CaptionSourceSettings `json:"sourceSettings,omitempty"`
}

type CaptionSourceSettings struct {
	EmbeddedSourceSettings *EmbeddedSourceSettings `json:"embeddedSourceSettings,omitempty"`
	FileSourceSettings     *FileSourceSettings     `json:"fileSourceSettings,omitempty"`
	SourceType             *CaptionSourceType      `json:"sourceType,omitempty"`
}

type FileSourceSettings struct {
	Convert608To708 *FileSourceConvert608To708 `json:"convert608To708,omitempty"`
	SourceFile      *string                    `json:"sourceFile,omitempty"`
	TimeDelta       *int64                     `json:"timeDelta,omitempty"`
}

type EmbeddedSourceSettings struct {
	Convert608To708        *EmbeddedConvert608To708 `json:"convert608To708,omitempty"`
	Source608ChannelNumber *int64                   `json:"source608ChannelNumber,omitempty"`
	Source608TrackNumber   *int64                   `json:"source608TrackNumber,omitempty"`
}
