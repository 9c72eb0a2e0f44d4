package mutagens

import (
	m "gooze.dev/pkg/rooze/internal/model"
)

// leakedDefault is `Box::leak(Box::new(Default::default()))`, a default value
// that lives long enough to be returned by reference.
func leakedDefault() []m.TokenTree {
	return call(path("Box", "leak"), call(path("Box", "new"), defaultValue()...)...)
}
