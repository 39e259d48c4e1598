package api

// UserModel is the JSON representation of an account returned by the user
// endpoints.
type UserModel struct {
	URI      string `json:"uri,omitempty"`
	ID       string `json:"id,omitempty"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	Created  string `json:"created,omitempty"`
	Modified string `json:"modified,omitempty"`
}

// LoginRequest is the body of a POST to the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login; Token is the JWT to send
// as a Bearer token on every subsequent request.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// InfoModel describes the running server for unauthenticated discovery.
type InfoModel struct {
	Version string `json:"version"`
}

// GrammarModel is the JSON representation of a saved grammar.
type GrammarModel struct {
	URI      string `json:"uri,omitempty"`
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Text     string `json:"text"`
	Created  string `json:"created,omitempty"`
	Modified string `json:"modified,omitempty"`
}

// AnalyzeRequest is the body of a POST to the per-grammar analyze endpoint.
// K defaults to 1 if zero or unset. Any combination of First/Follow/
// Lookahead/LL may be requested; Words is recognized against the built table
// only once LL analysis (implied by a non-empty Words) confirms the grammar
// is LL(k).
type AnalyzeRequest struct {
	K         int        `json:"k"`
	First     bool       `json:"first"`
	Follow    bool       `json:"follow"`
	Lookahead bool       `json:"lookahead"`
	LL        bool       `json:"ll"`
	Words     [][]string `json:"words,omitempty"`
}

// ConflictModel is the JSON representation of one ll.Conflict.
type ConflictModel struct {
	RuleA   int    `json:"rule_a"`
	RuleB   int    `json:"rule_b"`
	Overlap string `json:"overlap"`
}

// SymbolSetModel is the JSON representation of one non-terminal's rendered
// FIRST_k or FOLLOW_k set.
type SymbolSetModel struct {
	Symbol string `json:"symbol"`
	Set    string `json:"set"`
}

// WordResultModel is the JSON representation of one recognized word: the
// console log the recognizer produced, whether it was accepted, and its
// parse tree (if accepted) as Graphviz DOT.
type WordResultModel struct {
	Word         []string `json:"word"`
	Log          string   `json:"log"`
	Accepted     bool     `json:"accepted"`
	ParseTreeDot string   `json:"parse_tree_dot,omitempty"`
}

// AnalyzeResponse is the JSON representation of a tunas.AnalysisResult.
type AnalyzeResponse struct {
	K         int              `json:"k"`
	First     []SymbolSetModel `json:"first,omitempty"`
	Follow    []SymbolSetModel `json:"follow,omitempty"`
	Conflicts []ConflictModel  `json:"conflicts,omitempty"`
	IsLL      bool             `json:"is_ll,omitempty"`
	Table     string           `json:"table,omitempty"`
	Words     []WordResultModel `json:"words,omitempty"`
}
