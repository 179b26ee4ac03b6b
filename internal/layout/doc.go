// Package layout places signature fields at byte offsets following
// uniform-buffer alignment rules.
//
// Scalars align to their own size; every array aligns to 16 bytes. Padding
// between fields is explicit: each Entry records how many filler bytes go in
// front of the field and at which offset. No padding is added after the last
// field.
//
// Array fields are rendered with extra padding elements (see
// types.Type.AlignmentPadding). Whether the cursor skips over those elements
// is controlled by CursorMode; the default, CursorLogical, does not, which
// matches headers generated by earlier tooling.
package layout
