package submission

import (
	"bytes"
	"encoding/json"
)

// FlexString accepts either a JSON string or a JSON number. Submission forms
// send price and year both ways.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

type SubmitArtworkRequest struct {
	// artist
	ArtistName         string `json:"artistName" validate:"required,max=200"`
	ArtistEmail        string `json:"artistEmail,omitempty"`
	ArtistBio          string `json:"artistBio,omitempty"`
	ArtistWebsite      string `json:"artistWebsite,omitempty" validate:"omitempty,max=500"`
	ArtistInstagram    string `json:"artistInstagram,omitempty" validate:"omitempty,max=100"`
	ArtistProfileImage string `json:"artistProfileImage,omitempty"`

	// artwork
	Title       string     `json:"title" validate:"required,max=300"`
	Price       FlexString `json:"price" validate:"required"`
	Currency    string     `json:"currency,omitempty"`
	Image       string     `json:"image" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Dimensions  string     `json:"dimensions" validate:"required,max=100"`
	Year        FlexString `json:"year" validate:"required"`
	Category    string     `json:"category" validate:"required,max=100"`
	Medium      string     `json:"medium,omitempty" validate:"omitempty,max=100"`
}
