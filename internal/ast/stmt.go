package ast

import "github.com/toakleaf/sass.go/internal/source"

// Stmt is satisfied by every statement-family node of §3. The evaluator
// consumes these and, per invariant 6, must not leave any of the
// evaluation-only kinds (If/For/Each/While/Function/Mixin/Include/
// Content/Extend/Assign/Import, or any Expr) in the tree it hands to
// internal/csstree.
type Stmt interface {
	Span() source.Span
	stmtNode()
}

type stmtBase struct{ base }

func (stmtBase) stmtNode() {}

// Block is an ordered sequence of statements making up a rule/mixin body.
type Block struct {
	Stmts []Stmt
}

type StyleRule struct {
	stmtBase
	Selector *Interpolation
	Body     *Block
}

func NewStyleRule(span source.Span, sel *Interpolation, body *Block) *StyleRule {
	return &StyleRule{stmtBase{base{span}}, sel, body}
}

type Declaration struct {
	stmtBase
	Name  *Interpolation
	Value Expr // nil when Body is set (a nested-properties declaration)
	Body  *Block
}

func NewDeclaration(span source.Span, name *Interpolation, value Expr, body *Block) *Declaration {
	return &Declaration{stmtBase{base{span}}, name, value, body}
}

// AtRule is any at-rule the parser doesn't recognize as one of the typed
// forms below — preserved generically with its value captured as an
// Interpolation (§4.1).
type AtRule struct {
	stmtBase
	Name      string
	Value     *Interpolation // nil for a valueless at-rule
	Body      *Block         // nil for a childless at-rule
	Childless bool
}

func NewAtRule(span source.Span, name string, value *Interpolation, body *Block, childless bool) *AtRule {
	return &AtRule{stmtBase{base{span}}, name, value, body, childless}
}

type MediaRule struct {
	stmtBase
	Queries *Interpolation
	Body    *Block
}

func NewMediaRule(span source.Span, queries *Interpolation, body *Block) *MediaRule {
	return &MediaRule{stmtBase{base{span}}, queries, body}
}

type SupportsRule struct {
	stmtBase
	Condition *Interpolation
	Body      *Block
}

func NewSupportsRule(span source.Span, cond *Interpolation, body *Block) *SupportsRule {
	return &SupportsRule{stmtBase{base{span}}, cond, body}
}

// AtRootQuery is the parsed `(with: ...)`/`(without: ...)` clause.
type AtRootQuery struct {
	With    bool // true = "with", false = "without"; zero value (no clause) = without rule
	Names   []string
	HasQuery bool
}

type AtRootRule struct {
	stmtBase
	Query AtRootQuery
	Body  *Block
}

func NewAtRootRule(span source.Span, query AtRootQuery, body *Block) *AtRootRule {
	return &AtRootRule{stmtBase{base{span}}, query, body}
}

type KeyframesRule struct {
	stmtBase
	Prefix string // "", "-webkit-", "-moz-", ...
	Name   *Interpolation
	Body   *Block
}

func NewKeyframesRule(span source.Span, prefix string, name *Interpolation, body *Block) *KeyframesRule {
	return &KeyframesRule{stmtBase{base{span}}, prefix, name, body}
}

type IfClause struct {
	Cond Expr // nil for a trailing plain @else
	Body *Block
}

type IfRule struct {
	stmtBase
	Clauses []IfClause
}

func NewIfRule(span source.Span, clauses []IfClause) *IfRule {
	return &IfRule{stmtBase{base{span}}, clauses}
}

type ForRule struct {
	stmtBase
	Var       string
	From, To  Expr
	Exclusive bool // `to` (exclusive) vs `through` (inclusive)
	Body      *Block
}

func NewForRule(span source.Span, v string, from, to Expr, exclusive bool, body *Block) *ForRule {
	return &ForRule{stmtBase{base{span}}, v, from, to, exclusive, body}
}

type EachRule struct {
	stmtBase
	Vars     []string
	Iterable Expr
	Body     *Block
}

func NewEachRule(span source.Span, vars []string, iterable Expr, body *Block) *EachRule {
	return &EachRule{stmtBase{base{span}}, vars, iterable, body}
}

type WhileRule struct {
	stmtBase
	Cond Expr
	Body *Block
}

func NewWhileRule(span source.Span, cond Expr, body *Block) *WhileRule {
	return &WhileRule{stmtBase{base{span}}, cond, body}
}

// Param is one function/mixin parameter: a name, optional default, and
// whether it's the trailing rest (`...`) parameter.
type Param struct {
	Name    string
	Default Expr // nil if required
	IsRest  bool
}

type FunctionRule struct {
	stmtBase
	Name   string
	Params []Param
	Body   *Block
}

func NewFunctionRule(span source.Span, name string, params []Param, body *Block) *FunctionRule {
	return &FunctionRule{stmtBase{base{span}}, name, params, body}
}

type MixinRule struct {
	stmtBase
	Name   string
	Params []Param
	Body   *Block
}

func NewMixinRule(span source.Span, name string, params []Param, body *Block) *MixinRule {
	return &MixinRule{stmtBase{base{span}}, name, params, body}
}

type IncludeRule struct {
	stmtBase
	Name         string
	Namespace    string
	Args         ArgInvocation
	ContentArgs  []Param // parameters declared on `using ($a, $b)`
	ContentBlock *Block  // nil if no block passed
}

func NewIncludeRule(span source.Span, name, ns string, args ArgInvocation, contentArgs []Param, content *Block) *IncludeRule {
	return &IncludeRule{stmtBase{base{span}}, name, ns, args, contentArgs, content}
}

type ContentRule struct {
	stmtBase
	Args ArgInvocation
}

func NewContentRule(span source.Span, args ArgInvocation) *ContentRule {
	return &ContentRule{stmtBase{base{span}}, args}
}

type AssignRule struct {
	stmtBase
	Name      string
	Namespace string
	Expr      Expr
	Guarded   bool // !default
	Global    bool // !global
}

func NewAssignRule(span source.Span, name, ns string, expr Expr, guarded, global bool) *AssignRule {
	return &AssignRule{stmtBase{base{span}}, name, ns, expr, guarded, global}
}

type ReturnRule struct {
	stmtBase
	Expr Expr
}

func NewReturnRule(span source.Span, expr Expr) *ReturnRule { return &ReturnRule{stmtBase{base{span}}, expr} }

type ExtendRule struct {
	stmtBase
	Selector *Interpolation
	Optional bool
}

func NewExtendRule(span source.Span, sel *Interpolation, optional bool) *ExtendRule {
	return &ExtendRule{stmtBase{base{span}}, sel, optional}
}

type WarnRule struct {
	stmtBase
	Expr Expr
}

func NewWarnRule(span source.Span, expr Expr) *WarnRule { return &WarnRule{stmtBase{base{span}}, expr} }

type ErrorRule struct {
	stmtBase
	Expr Expr
}

func NewErrorRule(span source.Span, expr Expr) *ErrorRule { return &ErrorRule{stmtBase{base{span}}, expr} }

type DebugRule struct {
	stmtBase
	Expr Expr
}

func NewDebugRule(span source.Span, expr Expr) *DebugRule { return &DebugRule{stmtBase{base{span}}, expr} }

// StaticImport is a plain-CSS `@import` left in the output tree verbatim.
type StaticImport struct {
	URL   *Interpolation
	Media *Interpolation // nil if no media query list
}

// DynamicImport is a `@import "partial";` resolved against the importer
// chain before evaluation completes (§4.2).
type DynamicImport struct {
	URL string
}

type ImportEntry struct {
	Static  *StaticImport
	Dynamic *DynamicImport
}

type ImportRule struct {
	stmtBase
	Entries []ImportEntry
}

func NewImportRule(span source.Span, entries []ImportEntry) *ImportRule {
	return &ImportRule{stmtBase{base{span}}, entries}
}

// UseRule / ForwardRule implement the module system (§4.2).
type UseRule struct {
	stmtBase
	URL       string
	Namespace string // "" means derive from URL; "*" means no namespace (use "as *")
	ConfigWith map[string]Expr
}

func NewUseRule(span source.Span, url, ns string, config map[string]Expr) *UseRule {
	return &UseRule{stmtBase{base{span}}, url, ns, config}
}

type ForwardRule struct {
	stmtBase
	URL    string
	Prefix string
	Show   []string // nil if no filter
	Hide   []string
	ConfigWith map[string]Expr
}

func NewForwardRule(span source.Span, url, prefix string, show, hide []string, config map[string]Expr) *ForwardRule {
	return &ForwardRule{stmtBase{base{span}}, url, prefix, show, hide, config}
}

// ImportStub marks where a dynamic import's parsed statements were
// spliced into the importing site, carrying the absolute path for cycle
// detection and the included-files list (§4.2).
type ImportStub struct {
	stmtBase
	AbsolutePath string
	Body         *Block
}

func NewImportStub(span source.Span, path string, body *Block) *ImportStub {
	return &ImportStub{stmtBase{base{span}}, path, body}
}

// Comment preserves a loud (`/* ... */`) comment that should reach the
// output; silent (`//`) comments are dropped by the parser entirely.
type Comment struct {
	stmtBase
	Text string
}

func NewComment(span source.Span, text string) *Comment { return &Comment{stmtBase{base{span}}, text} }
