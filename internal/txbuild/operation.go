// Package txbuild assembles the marketplace's mutating operations as
// structured, not-yet-submitted call descriptions. Construction is
// pure; signing and dispatch belong to the execution collaborator.
package txbuild

// Action identifies a user-initiated mutating operation.
type Action string

const (
	ActionList Action = "list"
	ActionBuy  Action = "buy"
	ActionBurn Action = "burn"
	ActionMint Action = "mint"
)

// BurnAddress is the canonical null address assets are transferred to
// for destruction.
const BurnAddress = "0x0000000000000000000000000000000000000000000000000000000000000000"

// CommandKind discriminates programmable transaction commands.
type CommandKind string

const (
	CmdMoveCall        CommandKind = "MoveCall"
	CmdSplitCoins      CommandKind = "SplitCoins"
	CmdTransferObjects CommandKind = "TransferObjects"
)

// ArgKind discriminates call arguments.
type ArgKind string

const (
	ArgObject  ArgKind = "object"  // shared or owned object reference
	ArgPureU64 ArgKind = "u64"     // pure unsigned integer
	ArgPureStr ArgKind = "string"  // pure UTF-8 string
	ArgGasCoin ArgKind = "gas"     // the gas coin
	ArgResult  ArgKind = "result"  // result of an earlier command
)

// Argument is one input to a command.
type Argument struct {
	Kind   ArgKind
	Object string // object ID for ArgObject
	U64    uint64 // value for ArgPureU64
	Str    string // value for ArgPureStr
	Result int    // command index for ArgResult
}

// MoveCall invokes a package entry point, type-parameterized where the
// target module is generic.
type MoveCall struct {
	Target        string // package::module::function
	TypeArguments []string
	Arguments     []Argument
}

// SplitCoins splits exact amounts out of a coin into new values.
type SplitCoins struct {
	Coin    Argument
	Amounts []uint64
}

// TransferObjects transfers objects to a recipient address.
type TransferObjects struct {
	Objects   []Argument
	Recipient string
}

// Command is one step of an operation; exactly one member is set,
// selected by Kind.
type Command struct {
	Kind            CommandKind
	MoveCall        *MoveCall
	SplitCoins      *SplitCoins
	TransferObjects *TransferObjects
}

// Operation is a fully assembled, not-yet-submitted transaction body.
type Operation struct {
	Action   Action
	Commands []Command
}

func objectArg(id string) Argument { return Argument{Kind: ArgObject, Object: id} }
func u64Arg(v uint64) Argument     { return Argument{Kind: ArgPureU64, U64: v} }
func strArg(s string) Argument     { return Argument{Kind: ArgPureStr, Str: s} }
func gasArg() Argument             { return Argument{Kind: ArgGasCoin} }
func resultArg(index int) Argument { return Argument{Kind: ArgResult, Result: index} }
