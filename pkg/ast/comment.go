package ast

// CommentKind discriminates the CommentRule subtypes of spec §3.
type CommentKind uint8

const (
	CommentAgent CommentKind = iota
	CommentHint
	CommentPreProcessor
	CommentMetadata
	CommentConfig
	CommentSimple
)

// AgentEntry is one `adblock[ version]` token inside an Agent comment.
type AgentEntry struct {
	Adblock    string
	Version    string
	HasVersion bool
}

// Agent is the `[AdblockName version; AdblockName2]` comment family.
type Agent struct {
	Base
	Agents []AgentEntry
}

func (Agent) Category() Category       { return CategoryComment }
func (Agent) CommentKind() CommentKind { return CommentAgent }

// HintEntry is one `NAME(param, param)` token inside an AdGuard hint
// comment. Params is empty (not nil-vs-empty distinguished) when no
// parens were given.
type HintEntry struct {
	Name   string
	Params []string
}

// Hint is the AdGuard `!+ NAME(...) NAME2(...)` comment. Syntax is always
// syntax.Adg per spec §3.
type Hint struct {
	Base
	Hints []HintEntry
}

func (Hint) Category() Category       { return CategoryComment }
func (Hint) CommentKind() CommentKind { return CommentHint }

// PreProcessor is a `!#directive params...` line. Params are opaque, only
// split from the directive name (spec §4.3); individual directives are
// not further parsed by the core.
type PreProcessor struct {
	Base
	Name      string
	Params    string
	HasParams bool
}

func (PreProcessor) Category() Category       { return CategoryComment }
func (PreProcessor) CommentKind() CommentKind { return CommentPreProcessor }

// Metadata is a `! Header: Value` or `# Header: Value` line whose header
// name matches the allow-list in pkg/parser.
type Metadata struct {
	Base
	Marker byte // '!' or '#'
	Header string
	Value  string
}

func (Metadata) Category() Category       { return CategoryComment }
func (Metadata) CommentKind() CommentKind { return CommentMetadata }

// ConfigComment is an inline `! aglint ...` / `! aglint-disable ...` style
// directive consumed by the linter kernel (spec §4.7).
//
// Exactly one of ParamsObject or ParamsList is meaningful, selected by
// whether Command == "aglint" (spec §3 invariant).
type ConfigComment struct {
	Base
	Marker       byte
	Command      string
	ParamsList   []string
	ParamsObject map[string]any
	HasObject    bool
	Comment      string
	HasComment   bool
}

func (ConfigComment) Category() Category       { return CategoryComment }
func (ConfigComment) CommentKind() CommentKind { return CommentConfig }

// SimpleComment is any comment-marker-led line that matched no more
// specific comment subtype.
type SimpleComment struct {
	Base
	Marker byte
	Text   string
}

func (SimpleComment) Category() Category       { return CategoryComment }
func (SimpleComment) CommentKind() CommentKind { return CommentSimple }

// AglintCommand names recognized by ConfigComment.Command, per spec §6.
const (
	AglintCommandMain             = "aglint"
	AglintCommandDisable          = "aglint-disable"
	AglintCommandEnable           = "aglint-enable"
	AglintCommandDisableNextLine  = "aglint-disable-next-line"
	AglintCommandEnableNextLine   = "aglint-enable-next-line"
)
