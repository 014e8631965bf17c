// Package imaging implements the region pipeline that turns a player skin
// texture into avatar images.
//
// The pipeline is built from four primitives, always applied in this order:
//
//  1. Crop: copy a fixed Region out of the source texture.
//  2. Resize: scale with nearest-neighbor sampling to keep the pixel-art look.
//  3. PadUniform: grow an image with a transparent border (face only).
//  4. Blend: composite one layer "over" another in place (face only).
//
// Cape and Face combine the primitives into the two avatar operations, and
// Render wraps decode, operation and PNG encoding into a single call.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner:
//   - X increases rightward, Y increases downward
//   - For regions, (X1,Y1) is inclusive (top-left), (X2,Y2) is exclusive
//     (bottom-right)
//
// # Ownership
//
// Crop, Resize and PadUniform never modify their input and always return a
// freshly allocated image. Blend is the only mutating operation: it writes
// into its base argument. Images built during one Render call are referenced
// only by that call, so nothing is retained once it returns.
//
// # Error Handling
//
// Functions return errors wrapping one of the package sentinels:
//   - ErrInvalidRegion: degenerate region (X1 >= X2 or Y1 >= Y2)
//   - ErrOutOfBounds: region outside the image bounds
//   - ErrInvalidSize: non-positive target dimension or negative padding
//   - ErrSizeMismatch: layers of different dimensions passed to Blend
//   - ErrDecode: bytes that are not a supported image
package imaging
