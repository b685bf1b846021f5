package itembuilder

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// texturePayload is the JSON carried by an encoded head texture, as produced
// by the Java edition profile API and most head databases.
type texturePayload struct {
	Textures struct {
		Skin struct {
			URL string `json:"url"`
		} `json:"SKIN"`
	} `json:"textures"`
}

// decodeTexture extracts the skin URL from a base64 encoded texture.
func decodeTexture(texture string) (string, error) {
	texture = strings.TrimSpace(texture)
	if texture == "" {
		return "", &ResolutionError{Name: "PLAYER_HEAD", Err: errors.New("empty head texture")}
	}
	raw, err := base64.StdEncoding.DecodeString(texture)
	if err != nil {
		// Head databases commonly strip the padding.
		var rawErr error
		if raw, rawErr = base64.RawStdEncoding.DecodeString(strings.TrimRight(texture, "=")); rawErr != nil {
			return "", &ResolutionError{Name: "PLAYER_HEAD", Err: fmt.Errorf("decode head texture: %w", err)}
		}
	}

	var payload texturePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", &ResolutionError{Name: "PLAYER_HEAD", Err: fmt.Errorf("parse head texture: %w", err)}
	}
	if payload.Textures.Skin.URL == "" {
		return "", &ResolutionError{Name: "PLAYER_HEAD", Err: errors.New("head texture has no skin url")}
	}
	return payload.Textures.Skin.URL, nil
}
