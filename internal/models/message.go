package models

// BodyData is one transport-encoded body block: the declared size and the
// base64url-encoded content.
type BodyData struct {
	Size int64
	Data string
}

// Part is one sub-part of a multi-part message body
type Part struct {
	Body BodyData
}

// Payload mirrors the body structure the mail source returns: either an
// inline body with a non-zero size, or sub-parts with the text in the first.
type Payload struct {
	Body  BodyData
	Parts []Part
}

// RawMessage is the minimal representation fetched from the mail source.
// Header values are free text as delivered; From may still include a
// display name.
type RawMessage struct {
	ID      string
	Date    string
	From    string
	Subject string
	Payload Payload
}
