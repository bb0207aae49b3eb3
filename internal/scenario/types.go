package scenario

// Case is one test case within a scenario.
type Case struct {
	Text   string `yaml:"text"`
	Expect string `yaml:"expect"`           // accept | reject
	Signal string `yaml:"signal,omitempty"` // optional: expected signal on reject
	Token  string `yaml:"token,omitempty"`  // optional: expected matched token
}

// Scenario is a named collection of classifier test cases.
type Scenario struct {
	Name  string `yaml:"name"`
	Rules string `yaml:"rules,omitempty"` // optional rules file, relative to the scenario file
	Cases []Case `yaml:"cases"`
}

// CaseResult is the outcome of evaluating one test case.
type CaseResult struct {
	Index    int    `json:"index"`
	Passed   bool   `json:"passed"`
	Text     string `json:"text"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Detail   string `json:"detail,omitempty"`
}

// RunResult is the outcome of running all cases in one scenario file.
type RunResult struct {
	File   string       `json:"file"`
	Name   string       `json:"name"`
	Total  int          `json:"total"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Cases  []CaseResult `json:"cases"`
}
