// Package cube folds the flat map of a monkey-map puzzle into the six faces
// of a cube and answers "where do I land when I walk off this face?".
//
// What:
//
//   - Fold finds the six size×size face blocks of the net, folds the net by a
//     breadth-first traversal over adjacent blocks, and derives the transition
//     for every (face, exit direction) pair from the folded geometry.
//   - New builds a Cube from an explicit Layout and Table, for hand-encoded
//     nets.
//   - Resolve looks up a Transition; Transition.Remap maps the exiting cell to
//     the entering cell on the destination face.
//   - FlatCoordinates and Locate convert between face-local and flat positions.
//
// How the fold works:
//
//	Every face carries a frame of three integer unit vectors: the 3D direction
//	of its local "right", its local "down", and its outward normal. The first
//	block in reading order gets the identity frame. Walking off a face in
//	direction h (one of ±right, ±down) lands on the face whose normal is h,
//	and the axis that pointed along h now points into the cube (-normal).
//	Once all six frames are known:
//
//	  - the destination of (f, d) is the face whose normal is heading(f, d);
//	  - the new heading is the destination direction pointing along -normal(f);
//	  - the along-edge coordinate is reversed when the two faces' along-edge
//	    axes point opposite ways.
//
//	Faces are labelled by their normal relative to the first face: the first
//	face is Top, the side the first face's "down" points to is Front, then
//	Bottom, Rear, Right and Left accordingly.
//
// Complexity:
//
//   - Fold: O(W×H) to scan the map and copy faces, O(1) to fold six faces.
//   - Resolve, Remap, FlatCoordinates, Locate: O(1).
//
// Errors:
//
//   - ErrNotCubeNet:          the map is not a net of six equal square faces.
//   - ErrLayout:              an explicit Layout does not fit the map.
//   - ErrUndefinedTransition: Resolve on a pair missing from a hand-encoded Table.
//   - ErrOptionViolation:     a nil hook or logger was passed to Fold.
package cube
