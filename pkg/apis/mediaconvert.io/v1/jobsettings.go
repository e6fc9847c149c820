package v1

type TimecodeSource string

const (
	TimecodeSourceEmbedded       TimecodeSource = "EMBEDDED"
	TimecodeSourceZerobased      TimecodeSource = "ZEROBASED"
	TimecodeSourceSpecifiedstart TimecodeSource = "SPECIFIEDSTART"
)

// JobSettings describes the inputs of a job and how they are transcoded into output groups.
type JobSettings struct {
	// AdAvailOffset shifts SCTE-35 ad avail timing, in milliseconds. The service accepts -1000 to
	// 1000.
	AdAvailOffset *int64 `json:"adAvailOffset,omitempty"`

	AvailBlanking          *AvailBlanking          `json:"availBlanking,omitempty"`
	Inputs                 []*Input                `json:"inputs,omitempty"`
	OutputGroups           []*OutputGroup          `json:"outputGroups,omitempty"`
	TimecodeConfig         *TimecodeConfig         `json:"timecodeConfig,omitempty"`
	TimedMetadataInsertion *TimedMetadataInsertion `json:"timedMetadataInsertion,omitempty"`
}

type TimecodeConfig struct {
	// Anchor and Start are timecodes in 24-hour HH:MM:SS:FF or HH:MM:SS;FF form.
	Anchor *string `json:"anchor,omitempty"`

	Source *TimecodeSource `json:"source,omitempty"`
	Start  *string         `json:"start,omitempty"`

	// TimestampOffset is a date in YYYY-MM-DD form.
	TimestampOffset *string `json:"timestampOffset,omitempty"`
}

// AvailBlanking replaces ad avails with a slate image.
type AvailBlanking struct {
	AvailBlankingImage *string `json:"availBlankingImage,omitempty"`
}

type TimedMetadataInsertion struct {
	Id3Insertions []*Id3Insertion `json:"id3Insertions,omitempty"`
}

type Id3Insertion struct {
	// Id3 is a base64 encoded ID3 tag.
	Id3 *string `json:"id3,omitempty"`

	Timecode *string `json:"timecode,omitempty"`
}
