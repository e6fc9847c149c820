package v1

type CaptionDestinationType string

const (
	CaptionDestinationTypeBurnIn             CaptionDestinationType = "BURN_IN"
	CaptionDestinationTypeDvbSub             CaptionDestinationType = "DVB_SUB"
	CaptionDestinationTypeEmbedded           CaptionDestinationType = "EMBEDDED"
	CaptionDestinationTypeEmbeddedPlusScte20 CaptionDestinationType = "EMBEDDED_PLUS_SCTE20"
	CaptionDestinationTypeImsc               CaptionDestinationType = "IMSC"
	CaptionDestinationTypeScte20PlusEmbedded CaptionDestinationType = "SCTE20_PLUS_EMBEDDED"
	CaptionDestinationTypeScc                CaptionDestinationType = "SCC"
	CaptionDestinationTypeSrt                CaptionDestinationType = "SRT"
	CaptionDestinationTypeSmi                CaptionDestinationType = "SMI"
	CaptionDestinationTypeTeletext           CaptionDestinationType = "TELETEXT"
	CaptionDestinationTypeTtml               CaptionDestinationType = "TTML"
	CaptionDestinationTypeWebvtt             CaptionDestinationType = "WEBVTT"
)

type BurninSubtitleAlignment string

const (
	BurninSubtitleAlignmentCentered BurninSubtitleAlignment = "CENTERED"
	BurninSubtitleAlignmentLeft     BurninSubtitleAlignment = "LEFT"
	BurninSubtitleAlignmentAuto     BurninSubtitleAlignment = "AUTO"
)

type BurninSubtitleFontColor string

const (
	BurninSubtitleFontColorWhite  BurninSubtitleFontColor = "WHITE"
	BurninSubtitleFontColorBlack  BurninSubtitleFontColor = "BLACK"
	BurninSubtitleFontColorYellow BurninSubtitleFontColor = "YELLOW"
	BurninSubtitleFontColorRed    BurninSubtitleFontColor = "RED"
	BurninSubtitleFontColorGreen  BurninSubtitleFontColor = "GREEN"
	BurninSubtitleFontColorBlue   BurninSubtitleFontColor = "BLUE"
	BurninSubtitleFontColorHex    BurninSubtitleFontColor = "HEX"
	BurninSubtitleFontColorAuto   BurninSubtitleFontColor = "AUTO"
)

type WebvttStylePassthrough string

const (
	WebvttStylePassthroughEnabled  WebvttStylePassthrough = "ENABLED"
	WebvttStylePassthroughDisabled WebvttStylePassthrough = "DISABLED"
	WebvttStylePassthroughStrict   WebvttStylePassthrough = "STRICT"
)

// CaptionDescription is one caption track of an output.
type CaptionDescription struct {
	// CaptionSelectorName names the input CaptionSelector the track is built from.
	CaptionSelectorName *string `json:"captionSelectorName,omitempty"`

	CustomLanguageCode  *string                     `json:"customLanguageCode,omitempty"`
	DestinationSettings *CaptionDestinationSettings `json:"destinationSettings,omitempty"`
	LanguageCode        *LanguageCode               `json:"languageCode,omitempty"`
	LanguageDescription *string                     `json:"languageDescription,omitempty"`
}

type CaptionDestinationSettings struct {
	BurninDestinationSettings *BurninDestinationSettings `json:"burninDestinationSettings,omitempty"`
	DestinationType           *CaptionDestinationType    `json:"destinationType,omitempty"`
	WebvttDestinationSettings *WebvttDestinationSettings `json:"webvttDestinationSettings,omitempty"`
}

type BurninDestinationSettings struct {
	Alignment   *BurninSubtitleAlignment `json:"alignment,omitempty"`
	FontColor   *BurninSubtitleFontColor `json:"fontColor,omitempty"`
	FontOpacity *int64                   `json:"fontOpacity,omitempty"`
	FontSize    *int64                   `json:"fontSize,omitempty"`
	OutlineSize *int64                   `json:"outlineSize,omitempty"`
	XPosition   *int64                   `json:"xPosition,omitempty"`
	YPosition   *int64                   `json:"yPosition,omitempty"`
}

type WebvttDestinationSettings struct {
	StylePassthrough *WebvttStylePassthrough `json:"stylePassthrough,omitempty"`
}
