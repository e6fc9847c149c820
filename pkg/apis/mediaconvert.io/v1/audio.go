package v1

type AudioCodec string

const (
	AudioCodecAac         AudioCodec = "AAC"
	AudioCodecMp2         AudioCodec = "MP2"
	AudioCodecMp3         AudioCodec = "MP3"
	AudioCodecWav         AudioCodec = "WAV"
	AudioCodecAiff        AudioCodec = "AIFF"
	AudioCodecAc3         AudioCodec = "AC3"
	AudioCodecEac3        AudioCodec = "EAC3"
	AudioCodecEac3Atmos   AudioCodec = "EAC3_ATMOS"
	AudioCodecVorbis      AudioCodec = "VORBIS"
	AudioCodecOpus        AudioCodec = "OPUS"
	AudioCodecPassthrough AudioCodec = "PASSTHROUGH"
	AudioCodecFlac        AudioCodec = "FLAC"
)

// AudioLanguageCodeControl decides whether the output keeps the input's language or the configured
// one.
type AudioLanguageCodeControl string

const (
	AudioLanguageCodeControlFollowInput   AudioLanguageCodeControl = "FOLLOW_INPUT"
	AudioLanguageCodeControlUseConfigured AudioLanguageCodeControl = "USE_CONFIGURED"
)

type AacCodecProfile string

const (
	AacCodecProfileLc   AacCodecProfile = "LC"
	AacCodecProfileHev1 AacCodecProfile = "HEV1"
	AacCodecProfileHev2 AacCodecProfile = "HEV2"
)

type AacCodingMode string

const (
	AacCodingModeAdReceiverMix AacCodingMode = "AD_RECEIVER_MIX"
	AacCodingModeCodingMode10  AacCodingMode = "CODING_MODE_1_0"
	AacCodingModeCodingMode11  AacCodingMode = "CODING_MODE_1_1"
	AacCodingModeCodingMode20  AacCodingMode = "CODING_MODE_2_0"
	AacCodingModeCodingMode51  AacCodingMode = "CODING_MODE_5_1"
)

type AacRateControlMode string

const (
	AacRateControlModeCbr AacRateControlMode = "CBR"
	AacRateControlModeVbr AacRateControlMode = "VBR"
)

type AacSpecification string

const (
	AacSpecificationMpeg2 AacSpecification = "MPEG2"
	AacSpecificationMpeg4 AacSpecification = "MPEG4"
)

type Ac3BitstreamMode string

const (
	Ac3BitstreamModeCompleteMain     Ac3BitstreamMode = "COMPLETE_MAIN"
	Ac3BitstreamModeCommentary       Ac3BitstreamMode = "COMMENTARY"
	Ac3BitstreamModeDialogue         Ac3BitstreamMode = "DIALOGUE"
	Ac3BitstreamModeEmergency        Ac3BitstreamMode = "EMERGENCY"
	Ac3BitstreamModeHearingImpaired  Ac3BitstreamMode = "HEARING_IMPAIRED"
	Ac3BitstreamModeMusicAndEffects  Ac3BitstreamMode = "MUSIC_AND_EFFECTS"
	Ac3BitstreamModeVisuallyImpaired Ac3BitstreamMode = "VISUALLY_IMPAIRED"
	Ac3BitstreamModeVoiceOver        Ac3BitstreamMode = "VOICE_OVER"
)

type Ac3CodingMode string

const (
	Ac3CodingModeCodingMode10    Ac3CodingMode = "CODING_MODE_1_0"
	Ac3CodingModeCodingMode11    Ac3CodingMode = "CODING_MODE_1_1"
	Ac3CodingModeCodingMode20    Ac3CodingMode = "CODING_MODE_2_0"
	Ac3CodingModeCodingMode32Lfe Ac3CodingMode = "CODING_MODE_3_2_LFE"
)

type Mp3RateControlMode string

const (
	Mp3RateControlModeCbr Mp3RateControlMode = "CBR"
	Mp3RateControlModeVbr Mp3RateControlMode = "VBR"
)

// AudioDescription is one audio track of an output.
type AudioDescription struct {
	// AudioSourceName names the input AudioSelector the track is built from.
	AudioSourceName *string `json:"audioSourceName,omitempty"`

	AudioType           *int64                    `json:"audioType,omitempty"`
	CodecSettings       *AudioCodecSettings       `json:"codecSettings,omitempty"`
	CustomLanguageCode  *string                   `json:"customLanguageCode,omitempty"`
	LanguageCode        *LanguageCode             `json:"languageCode,omitempty"`
	LanguageCodeControl *AudioLanguageCodeControl `json:"languageCodeControl,omitempty"`
	StreamName          *string                   `json:"streamName,omitempty"`
}

type AudioCodecSettings struct {
	AacSettings *AacSettings `json:"aacSettings,omitempty"`
	Ac3Settings *Ac3Settings `json:"ac3Settings,omitempty"`
	Codec       *AudioCodec  `json:"codec,omitempty"`
	Mp3Settings *Mp3Settings `json:"mp3Settings,omitempty"`
}

type AacSettings struct {
	Bitrate         *int64              `json:"bitrate,omitempty"`
	CodecProfile    *AacCodecProfile    `json:"codecProfile,omitempty"`
	CodingMode      *AacCodingMode      `json:"codingMode,omitempty"`
	RateControlMode *AacRateControlMode `json:"rateControlMode,omitempty"`
	SampleRate      *int64              `json:"sampleRate,omitempty"`
	Specification   *AacSpecification   `json:"specification,omitempty"`
}

type Ac3Settings struct {
	Bitrate       *int64            `json:"bitrate,omitempty"`
	BitstreamMode *Ac3BitstreamMode `json:"bitstreamMode,omitempty"`
	CodingMode    *Ac3CodingMode    `json:"codingMode,omitempty"`
	Dialnorm      *int64            `json:"dialnorm,omitempty"`
	SampleRate    *int64            `json:"sampleRate,omitempty"`
}

type Mp3Settings struct {
	Bitrate         *int64              `json:"bitrate,omitempty"`
	Channels        *int64              `json:"channels,omitempty"`
	RateControlMode *Mp3RateControlMode `json:"rateControlMode,omitempty"`
	SampleRate      *int64              `json:"sampleRate,omitempty"`
	VbrQuality      *int64              `json:"vbrQuality,omitempty"`
}
