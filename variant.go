package lazyimg

// Variant is one candidate representation of an image: a full-resolution
// source plus its placeholder forms and sizing metadata. Callers supply an
// already-normalized list; lazyimg does not group raw configuration into
// variants, and it does not choose which variant to display — it only
// decides when fetching may begin and what transition to apply.
type Variant struct {
	// Src is the primary source for this variant. The first variant's Src
	// is the controller's identity (see identityOf).
	Src string
	// SrcSet lists alternative densities/widths for this variant.
	SrcSet string
	// Media is the media condition under which this variant applies
	// (art direction). Empty means unconditional.
	Media string
	// Sizes hints the rendered width for source selection.
	Sizes string

	// Base64 is the tiny inline placeholder as a data URI or raw base64
	// payload. See DecodePlaceholder.
	Base64 string
	// TracedSVG is a low-fidelity vector placeholder.
	TracedSVG string

	// Width and Height are the intrinsic pixel dimensions (fixed mode).
	Width, Height float64
	// AspectRatio is width/height (responsive mode).
	AspectRatio float64
}

// identityOf derives the canonical key that recognizes "the same logical
// image" across controller instances: the first variant's Src. Two
// configurations sharing a first-variant source are the same image for
// seen-cache and animation-skip purposes. An empty variant list has the
// empty identity.
func identityOf(variants []Variant) string {
	if len(variants) == 0 {
		return ""
	}
	return variants[0].Src
}
