package whatsapp

// MessagingProduct is sent with every request.
const MessagingProduct = "whatsapp"

// TextPayload is a plain text message.
type TextPayload struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             TextBody `json:"text"`
}

// TextBody is the text object of a text message.
type TextBody struct {
	Body       string `json:"body"`
	PreviewURL bool   `json:"preview_url"`
}

// ListPayload is an interactive list message.
type ListPayload struct {
	MessagingProduct string          `json:"messaging_product"`
	To               string          `json:"to"`
	Type             string          `json:"type"`
	Interactive      ListInteractive `json:"interactive"`
}

// ListInteractive is the interactive object of a list message. Header and
// Footer are nil unless set so they never appear as null keys.
type ListInteractive struct {
	Type   string       `json:"type"`
	Action ListAction   `json:"action"`
	Body   ListBody     `json:"body"`
	Header *TextCaption `json:"header,omitempty"`
	Footer *TextCaption `json:"footer,omitempty"`
}

// ListAction holds the button label and the rendered sections.
type ListAction struct {
	Button   string `json:"button"`
	Sections []any  `json:"sections"`
}

// ListBody is the body of a list message.
type ListBody struct {
	Text string `json:"text"`
}

// TextCaption is a header or footer.
type TextCaption struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SectionPayload is the wire form of a Section.
type SectionPayload struct {
	Title string       `json:"title"`
	Rows  []RowPayload `json:"rows"`
}

// RowPayload is one selectable row.
type RowPayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// MediaPayload is a file message. Exactly one of the media fields is set,
// matching Type.
type MediaPayload struct {
	MessagingProduct string     `json:"messaging_product"`
	To               string     `json:"to"`
	Type             string     `json:"type"`
	Audio            *MediaLink `json:"audio,omitempty"`
	Document         *MediaLink `json:"document,omitempty"`
	Image            *MediaLink `json:"image,omitempty"`
	Sticker          *MediaLink `json:"sticker,omitempty"`
	Video            *MediaLink `json:"video,omitempty"`
}

// MediaLink points at a remotely hosted file.
type MediaLink struct {
	Link string `json:"link"`
}

// ReactionPayload reacts to a message.
type ReactionPayload struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Reaction         Reaction `json:"reaction"`
}

// Reaction names the message and the emoji.
type Reaction struct {
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
}

// ReplyPayload is a text message sent in the context of an earlier one.
type ReplyPayload struct {
	MessagingProduct string       `json:"messaging_product"`
	Context          ReplyContext `json:"context"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             ReplyText    `json:"text"`
}

// ReplyContext references the message being answered.
type ReplyContext struct {
	MessageID  string `json:"message_id"`
	PreviewURL bool   `json:"preview_url"`
}

// ReplyText is the text object of a reply.
type ReplyText struct {
	Body string `json:"body"`
}

// ReadPayload marks a message as read.
type ReadPayload struct {
	MessagingProduct string `json:"messaging_product"`
	Status           string `json:"status"`
	MessageID        string `json:"message_id"`
}
