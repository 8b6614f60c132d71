package graph

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

// CutId identifies a cut (subgraph) within a single Graph instance. It is
// opaque and only meaningful relative to the Graph that minted it.
type CutId string

// idLen is the length of a generated CutId, per spec: "10-character
// nanoid-style tokens are sufficient but the exact shape is not observable".
const idLen = 10

var idEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// newCutId derives a fresh, globally-unique-enough token from a random UUID.
// uuidv4 is a package variable (rather than a direct call to uuid.New) so
// tests can stub it, mirroring the teacher's uuidv1-stubbing pattern.
var uuidv4 = uuid.New

func newCutId() CutId {
	u := uuidv4()
	enc := idEncoding.EncodeToString(u[:])
	return CutId(strings.ToLower(enc[:idLen]))
}
