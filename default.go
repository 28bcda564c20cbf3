package modulators

import (
	"time"

	"github.com/cbegin/modulators-go/rng"
)

// defaultSource backs every constructor that is not given an explicit
// WithSource option. It is seeded once at package init from the wall
// clock; callers that need reproducible output must pass
// WithSource(rng.New(seed)) explicitly.
var defaultSource = rng.New(time.Now().UnixNano())
