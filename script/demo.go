package script

import _ "embed"

//go:embed demo.yaml
var demoYAML []byte

// Demo returns the built-in demo script.
func Demo() *Script {
	s, err := Parse(demoYAML)
	if err != nil {
		panic(err)
	}
	return s
}

// DemoYAML returns the source of the demo script.
func DemoYAML() []byte {
	return append([]byte(nil), demoYAML...)
}
