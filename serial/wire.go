package serial

// nodeWire is the tagged-union wire shape for a grammar.Node: exactly one
// field should be set on any well-formed value, mirroring the "object
// with exactly one key chosen from seq/alt/rep/opt/term/non_term/tagged/
// meta" shape from spec.md §6.
type nodeWire struct {
	Seq     []nodeWire  `yaml:"seq,omitempty"`
	Alt     []nodeWire  `yaml:"alt,omitempty"`
	Rep     *repWire    `yaml:"rep,omitempty"`
	Opt     *nodeWire   `yaml:"opt,omitempty"`
	Term    *string     `yaml:"term,omitempty"`
	NonTerm *string     `yaml:"non_term,omitempty"`
	Tagged  *taggedWire `yaml:"tagged,omitempty"`
	Meta    *metaWire   `yaml:"meta,omitempty"`
}

type repWire struct {
	Node nodeWire `yaml:"node"`
	Min  int      `yaml:"min,omitempty"`
	Max  *int     `yaml:"max,omitempty"` // omitted means Unbounded
}

type taggedWire struct {
	Node nodeWire `yaml:"node"`
	Tag  string   `yaml:"tag"`
}

type metaWire struct {
	Node nodeWire          `yaml:"node"`
	Meta map[string]string `yaml:"meta,omitempty"`
}

type ruleWire struct {
	Name string   `yaml:"name"`
	Node nodeWire `yaml:"node"`
}

type grammarWire struct {
	Name  string     `yaml:"name"`
	Start string     `yaml:"start,omitempty"`
	Rules []ruleWire `yaml:"rules"`
}
