package entities

// Scenario is a scripted sequence of contract calls run by the sandbox.
type Scenario struct {
	// Name identifies the scenario in logs and reports.
	Name string `yaml:"name" json:"name" validate:"required"`

	// Caller is the default caller of every step.
	Caller AccountID `yaml:"caller" json:"caller"`

	// Host seeds the in-memory extension host.
	Host HostFixture `yaml:"host" json:"host"`

	// Steps run in order against a single deployed instance.
	Steps []ScenarioStep `yaml:"steps" json:"steps" validate:"required,min=1,dive"`
}

// ScenarioStep is one message call.
type ScenarioStep struct {
	// Args are decoded into the message's argument struct.
	Args map[string]any `yaml:"args,omitempty" json:"args,omitempty"`

	// Caller overrides the scenario caller for this step.
	Caller *AccountID `yaml:"caller,omitempty" json:"caller,omitempty"`

	// Message is the message name, e.g. "transfer_all".
	Message string `yaml:"message" json:"message" validate:"required"`

	// Expect is the expected outcome: success (default), revert or trap.
	Expect string `yaml:"expect,omitempty" json:"expect,omitempty" validate:"omitempty,oneof=success revert trap"`
}

// HostFixture describes the initial state of the in-memory extension host.
type HostFixture struct {
	// RandomSeed seeds the deterministic randomness source.
	RandomSeed string `yaml:"random_seed,omitempty" json:"random_seed,omitempty"`

	// Classes are created before the first step.
	Classes []ClassFixture `yaml:"classes,omitempty" json:"classes,omitempty" validate:"dive"`

	// FailFuncs lists extension function ids that always answer with status 1.
	FailFuncs []uint32 `yaml:"fail_funcs,omitempty" json:"fail_funcs,omitempty"`

	// BlockNumber is the block height reported for minted tokens.
	BlockNumber BlockNumber `yaml:"block_number,omitempty" json:"block_number,omitempty"`
}

// ClassFixture is a pre-existing class and its tokens.
type ClassFixture struct {
	Metadata Bytes          `yaml:"metadata,omitempty" json:"metadata,omitempty"`
	Tokens   []TokenFixture `yaml:"tokens,omitempty" json:"tokens,omitempty" validate:"dive"`
	ID       ClassID        `yaml:"id" json:"id"`
	Owner    AccountID      `yaml:"owner" json:"owner"`
}

// TokenFixture is a pre-minted token balance.
type TokenFixture struct {
	Metadata Bytes     `yaml:"metadata,omitempty" json:"metadata,omitempty"`
	ID       TokenID   `yaml:"id" json:"id"`
	Quantity Quantity  `yaml:"quantity" json:"quantity" validate:"gte=1"`
	Owner    AccountID `yaml:"owner" json:"owner"`
}
