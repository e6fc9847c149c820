package v1

type AfdSignaling string

const (
	AfdSignalingNone  AfdSignaling = "NONE"
	AfdSignalingAuto  AfdSignaling = "AUTO"
	AfdSignalingFixed AfdSignaling = "FIXED"
)

type AntiAlias string

const (
	AntiAliasBypass  AntiAlias = "BYPASS"
	AntiAliasEnabled AntiAlias = "ENABLED"
)

type RespondToAfd string

const (
	RespondToAfdNone        RespondToAfd = "NONE"
	RespondToAfdRespond     RespondToAfd = "RESPOND"
	RespondToAfdPassthrough RespondToAfd = "PASSTHROUGH"
)

type ScalingBehavior string

const (
	ScalingBehaviorDefault         ScalingBehavior = "DEFAULT"
	ScalingBehaviorStretchToOutput ScalingBehavior = "STRETCH_TO_OUTPUT"
	ScalingBehaviorFit             ScalingBehavior = "FIT"
	ScalingBehaviorFitNoUpscale    ScalingBehavior = "FIT_NO_UPSCALE"
	ScalingBehaviorFill            ScalingBehavior = "FILL"
)

type VideoTimecodeInsertion string

const (
	VideoTimecodeInsertionDisabled     VideoTimecodeInsertion = "DISABLED"
	VideoTimecodeInsertionPicTimingSei VideoTimecodeInsertion = "PIC_TIMING_SEI"
)

type ColorMetadata string

const (
	ColorMetadataIgnore ColorMetadata = "IGNORE"
	ColorMetadataInsert ColorMetadata = "INSERT"
)

// VideoCodec names the codec of an output. The matching member of VideoCodecSettings holds its
// settings.
type VideoCodec string

const (
	VideoCodecAv1          VideoCodec = "AV1"
	VideoCodecAvcIntra     VideoCodec = "AVC_INTRA"
	VideoCodecFrameCapture VideoCodec = "FRAME_CAPTURE"
	VideoCodecH264         VideoCodec = "H_264"
	VideoCodecH265         VideoCodec = "H_265"
	VideoCodecMpeg2        VideoCodec = "MPEG2"
	VideoCodecPassthrough  VideoCodec = "PASSTHROUGH"
	VideoCodecProres       VideoCodec = "PRORES"
	VideoCodecUncompressed VideoCodec = "UNCOMPRESSED"
	VideoCodecVc3          VideoCodec = "VC3"
	VideoCodecVp8          VideoCodec = "VP8"
	VideoCodecVp9          VideoCodec = "VP9"
	VideoCodecXavc         VideoCodec = "XAVC"
)

type H264AdaptiveQuantization string

const (
	H264AdaptiveQuantizationOff    H264AdaptiveQuantization = "OFF"
	H264AdaptiveQuantizationAuto   H264AdaptiveQuantization = "AUTO"
	H264AdaptiveQuantizationLow    H264AdaptiveQuantization = "LOW"
	H264AdaptiveQuantizationMedium H264AdaptiveQuantization = "MEDIUM"
	H264AdaptiveQuantizationHigh   H264AdaptiveQuantization = "HIGH"
	H264AdaptiveQuantizationHigher H264AdaptiveQuantization = "HIGHER"
	H264AdaptiveQuantizationMax    H264AdaptiveQuantization = "MAX"
)

type H264CodecLevel string

const (
	H264CodecLevelAuto    H264CodecLevel = "AUTO"
	H264CodecLevelLevel1  H264CodecLevel = "LEVEL_1"
	H264CodecLevelLevel11 H264CodecLevel = "LEVEL_1_1"
	H264CodecLevelLevel12 H264CodecLevel = "LEVEL_1_2"
	H264CodecLevelLevel13 H264CodecLevel = "LEVEL_1_3"
	H264CodecLevelLevel2  H264CodecLevel = "LEVEL_2"
	H264CodecLevelLevel21 H264CodecLevel = "LEVEL_2_1"
	H264CodecLevelLevel22 H264CodecLevel = "LEVEL_2_2"
	H264CodecLevelLevel3  H264CodecLevel = "LEVEL_3"
	H264CodecLevelLevel31 H264CodecLevel = "LEVEL_3_1"
	H264CodecLevelLevel32 H264CodecLevel = "LEVEL_3_2"
	H264CodecLevelLevel4  H264CodecLevel = "LEVEL_4"
	H264CodecLevelLevel41 H264CodecLevel = "LEVEL_4_1"
	H264CodecLevelLevel42 H264CodecLevel = "LEVEL_4_2"
	H264CodecLevelLevel5  H264CodecLevel = "LEVEL_5"
	H264CodecLevelLevel51 H264CodecLevel = "LEVEL_5_1"
	H264CodecLevelLevel52 H264CodecLevel = "LEVEL_5_2"
)

type H264CodecProfile string

const (
	H264CodecProfileBaseline     H264CodecProfile = "BASELINE"
	H264CodecProfileHigh         H264CodecProfile = "HIGH"
	H264CodecProfileHigh10bit    H264CodecProfile = "HIGH_10BIT"
	H264CodecProfileHigh422      H264CodecProfile = "HIGH_422"
	H264CodecProfileHigh42210bit H264CodecProfile = "HIGH_422_10BIT"
	H264CodecProfileMain         H264CodecProfile = "MAIN"
)

type H264FramerateControl string

const (
	H264FramerateControlInitializeFromSource H264FramerateControl = "INITIALIZE_FROM_SOURCE"
	H264FramerateControlSpecified            H264FramerateControl = "SPECIFIED"
)

type H264GopSizeUnits string

const (
	H264GopSizeUnitsFrames  H264GopSizeUnits = "FRAMES"
	H264GopSizeUnitsSeconds H264GopSizeUnits = "SECONDS"
	H264GopSizeUnitsAuto    H264GopSizeUnits = "AUTO"
)

type H264QualityTuningLevel string

const (
	H264QualityTuningLevelSinglePass   H264QualityTuningLevel = "SINGLE_PASS"
	H264QualityTuningLevelSinglePassHq H264QualityTuningLevel = "SINGLE_PASS_HQ"
	H264QualityTuningLevelMultiPassHq  H264QualityTuningLevel = "MULTI_PASS_HQ"
)

type H264RateControlMode string

const (
	H264RateControlModeVbr  H264RateControlMode = "VBR"
	H264RateControlModeCbr  H264RateControlMode = "CBR"
	H264RateControlModeQvbr H264RateControlMode = "QVBR"
)

type H264SceneChangeDetect string

const (
	H264SceneChangeDetectDisabled            H264SceneChangeDetect = "DISABLED"
	H264SceneChangeDetectEnabled             H264SceneChangeDetect = "ENABLED"
	H264SceneChangeDetectTransitionDetection H264SceneChangeDetect = "TRANSITION_DETECTION"
)

type H265AdaptiveQuantization string

const (
	H265AdaptiveQuantizationOff    H265AdaptiveQuantization = "OFF"
	H265AdaptiveQuantizationLow    H265AdaptiveQuantization = "LOW"
	H265AdaptiveQuantizationMedium H265AdaptiveQuantization = "MEDIUM"
	H265AdaptiveQuantizationHigh   H265AdaptiveQuantization = "HIGH"
	H265AdaptiveQuantizationHigher H265AdaptiveQuantization = "HIGHER"
	H265AdaptiveQuantizationMax    H265AdaptiveQuantization = "MAX"
	H265AdaptiveQuantizationAuto   H265AdaptiveQuantization = "AUTO"
)

type H265CodecLevel string

const (
	H265CodecLevelAuto    H265CodecLevel = "AUTO"
	H265CodecLevelLevel1  H265CodecLevel = "LEVEL_1"
	H265CodecLevelLevel2  H265CodecLevel = "LEVEL_2"
	H265CodecLevelLevel21 H265CodecLevel = "LEVEL_2_1"
	H265CodecLevelLevel3  H265CodecLevel = "LEVEL_3"
	H265CodecLevelLevel31 H265CodecLevel = "LEVEL_3_1"
	H265CodecLevelLevel4  H265CodecLevel = "LEVEL_4"
	H265CodecLevelLevel41 H265CodecLevel = "LEVEL_4_1"
	H265CodecLevelLevel5  H265CodecLevel = "LEVEL_5"
	H265CodecLevelLevel51 H265CodecLevel = "LEVEL_5_1"
	H265CodecLevelLevel52 H265CodecLevel = "LEVEL_5_2"
	H265CodecLevelLevel6  H265CodecLevel = "LEVEL_6"
	H265CodecLevelLevel61 H265CodecLevel = "LEVEL_6_1"
	H265CodecLevelLevel62 H265CodecLevel = "LEVEL_6_2"
)

// H265CodecProfile combines the profile and the tier, e.g. MAIN10_HIGH is Main 10 at High tier.
type H265CodecProfile string

const (
	H265CodecProfileMainMain         H265CodecProfile = "MAIN_MAIN"
	H265CodecProfileMainHigh         H265CodecProfile = "MAIN_HIGH"
	H265CodecProfileMain10Main       H265CodecProfile = "MAIN10_MAIN"
	H265CodecProfileMain10High       H265CodecProfile = "MAIN10_HIGH"
	H265CodecProfileMain4228bitMain  H265CodecProfile = "MAIN_422_8BIT_MAIN"
	H265CodecProfileMain4228bitHigh  H265CodecProfile = "MAIN_422_8BIT_HIGH"
	H265CodecProfileMain42210bitMain H265CodecProfile = "MAIN_422_10BIT_MAIN"
	H265CodecProfileMain42210bitHigh H265CodecProfile = "MAIN_422_10BIT_HIGH"
)

type H265FramerateControl string

const (
	H265FramerateControlInitializeFromSource H265FramerateControl = "INITIALIZE_FROM_SOURCE"
	H265FramerateControlSpecified            H265FramerateControl = "SPECIFIED"
)

type H265GopSizeUnits string

const (
	H265GopSizeUnitsFrames  H265GopSizeUnits = "FRAMES"
	H265GopSizeUnitsSeconds H265GopSizeUnits = "SECONDS"
	H265GopSizeUnitsAuto    H265GopSizeUnits = "AUTO"
)

type H265QualityTuningLevel string

const (
	H265QualityTuningLevelSinglePass   H265QualityTuningLevel = "SINGLE_PASS"
	H265QualityTuningLevelSinglePassHq H265QualityTuningLevel = "SINGLE_PASS_HQ"
	H265QualityTuningLevelMultiPassHq  H265QualityTuningLevel = "MULTI_PASS_HQ"
)

type H265RateControlMode string

const (
	H265RateControlModeVbr  H265RateControlMode = "VBR"
	H265RateControlModeCbr  H265RateControlMode = "CBR"
	H265RateControlModeQvbr H265RateControlMode = "QVBR"
)

type H265SceneChangeDetect string

const (
	H265SceneChangeDetectDisabled            H265SceneChangeDetect = "DISABLED"
	H265SceneChangeDetectEnabled             H265SceneChangeDetect = "ENABLED"
	H265SceneChangeDetectTransitionDetection H265SceneChangeDetect = "TRANSITION_DETECTION"
)

type H265WriteMp4PackagingType string

const (
	H265WriteMp4PackagingTypeHvc1 H265WriteMp4PackagingType = "HVC1"
	H265WriteMp4PackagingTypeHev1 H265WriteMp4PackagingType = "HEV1"
)

// VideoDescription is the video part of an output.
type VideoDescription struct {
	AfdSignaling  *AfdSignaling       `json:"afdSignaling,omitempty"`
	AntiAlias     *AntiAlias          `json:"antiAlias,omitempty"`
	CodecSettings *VideoCodecSettings `json:"codecSettings,omitempty"`
	ColorMetadata *ColorMetadata      `json:"colorMetadata,omitempty"`
	FixedAfd      *int64              `json:"fixedAfd,omitempty"`

	// Height and Width default to the input resolution when absent.
	Height *int64 `json:"height,omitempty"`

	RespondToAfd      *RespondToAfd           `json:"respondToAfd,omitempty"`
	ScalingBehavior   *ScalingBehavior        `json:"scalingBehavior,omitempty"`
	Sharpness         *int64                  `json:"sharpness,omitempty"`
	TimecodeInsertion *VideoTimecodeInsertion `json:"timecodeInsertion,omitempty"`
	Width             *int64                  `json:"width,omitempty"`
}

type VideoCodecSettings struct {
	Codec        *VideoCodec   `json:"codec,omitempty"`
	H264Settings *H264Settings `json:"h264Settings,omitempty"`
	H265Settings *H265Settings `json:"h265Settings,omitempty"`
}

// H264Settings tunes the AVC encoder.
type H264Settings struct {
	AdaptiveQuantization *H264AdaptiveQuantization `json:"adaptiveQuantization,omitempty"`

	// Bitrate is in bits per second and is used with CBR and VBR; QVBR uses QvbrSettings instead.
	Bitrate *int64 `json:"bitrate,omitempty"`

	CodecLevel           *H264CodecLevel         `json:"codecLevel,omitempty"`
	CodecProfile         *H264CodecProfile       `json:"codecProfile,omitempty"`
	FramerateControl     *H264FramerateControl   `json:"framerateControl,omitempty"`
	FramerateDenominator *int64                  `json:"framerateDenominator,omitempty"`
	FramerateNumerator   *int64                  `json:"framerateNumerator,omitempty"`
	GopSize              *float64                `json:"gopSize,omitempty"`
	GopSizeUnits         *H264GopSizeUnits       `json:"gopSizeUnits,omitempty"`
	MaxBitrate           *int64                  `json:"maxBitrate,omitempty"`
	QualityTuningLevel   *H264QualityTuningLevel `json:"qualityTuningLevel,omitempty"`
	QvbrSettings         *H264QvbrSettings       `json:"qvbrSettings,omitempty"`
	RateControlMode      *H264RateControlMode    `json:"rateControlMode,omitempty"`
	SceneChangeDetect    *H264SceneChangeDetect  `json:"sceneChangeDetect,omitempty"`
}

type H264QvbrSettings struct {
	MaxAverageBitrate *int64 `json:"maxAverageBitrate,omitempty"`

	// QvbrQualityLevel ranges from 1 to 10 on the service side.
	QvbrQualityLevel *int64 `json:"qvbrQualityLevel,omitempty"`

	QvbrQualityLevelFineTune *float64 `json:"qvbrQualityLevelFineTune,omitempty"`
}

// H265Settings tunes the HEVC encoder.
type H265Settings struct {
	AdaptiveQuantization  *H265AdaptiveQuantization  `json:"adaptiveQuantization,omitempty"`
	Bitrate               *int64                     `json:"bitrate,omitempty"`
	CodecLevel            *H265CodecLevel            `json:"codecLevel,omitempty"`
	CodecProfile          *H265CodecProfile          `json:"codecProfile,omitempty"`
	FramerateControl      *H265FramerateControl      `json:"framerateControl,omitempty"`
	FramerateDenominator  *int64                     `json:"framerateDenominator,omitempty"`
	FramerateNumerator    *int64                     `json:"framerateNumerator,omitempty"`
	GopSize               *float64                   `json:"gopSize,omitempty"`
	GopSizeUnits          *H265GopSizeUnits          `json:"gopSizeUnits,omitempty"`
	MaxBitrate            *int64                     `json:"maxBitrate,omitempty"`
	QualityTuningLevel    *H265QualityTuningLevel    `json:"qualityTuningLevel,omitempty"`
	QvbrSettings          *H265QvbrSettings          `json:"qvbrSettings,omitempty"`
	RateControlMode       *H265RateControlMode       `json:"rateControlMode,omitempty"`
	SceneChangeDetect     *H265SceneChangeDetect     `json:"sceneChangeDetect,omitempty"`
	WriteMp4PackagingType *H265WriteMp4PackagingType `json:"writeMp4PackagingType,omitempty"`
}

type H265QvbrSettings struct {
	MaxAverageBitrate        *int64   `json:"maxAverageBitrate,omitempty"`
	QvbrQualityLevel         *int64   `json:"qvbrQualityLevel,omitempty"`
	QvbrQualityLevelFineTune *float64 `json:"qvbrQualityLevelFineTune,omitempty"`
}
