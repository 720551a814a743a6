package lazyimg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// DecodePlaceholder decodes a tiny inline placeholder from a Variant.Base64
// payload. Both `data:image/...;base64,` URIs and bare base64 payloads are
// accepted. Placeholders are typically ~20px wide; scale the result up to
// display size with ScalePlaceholder.
//
// A decode failure is not fatal to the load lifecycle — the caller simply
// has no placeholder layer to draw.
func DecodePlaceholder(data string) (image.Image, error) {
	payload := data
	if strings.HasPrefix(data, "data:") {
		_, rest, ok := strings.Cut(data, ",")
		if !ok {
			return nil, fmt.Errorf("decode placeholder: malformed data URI")
		}
		payload = rest
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode placeholder: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode placeholder: %w", err)
	}
	return img, nil
}

// ScalePlaceholder upscales a decoded placeholder to the display size.
// Bilinear interpolation doubles as the blur: a 20px source stretched to
// full size gives the soft preview the progressive style wants.
func ScalePlaceholder(src image.Image, width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
