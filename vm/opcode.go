package vm

// Op is an instruction operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_CPY = Op(0) // cpy
	OP_INC = Op(1) // inc
	OP_DEC = Op(2) // dec
	OP_JNZ = Op(3) // jnz
	OP_TGL = Op(4) // tgl
	OP_OUT = Op(5) // out
)

// opMap maps mnemonics to operations.
var opMap = map[string]Op{
	"cpy": OP_CPY,
	"inc": OP_INC,
	"dec": OP_DEC,
	"jnz": OP_JNZ,
	"tgl": OP_TGL,
	"out": OP_OUT,
}

// Arity returns the number of operands the operation takes.
func (op Op) Arity() int {
	switch op {
	case OP_CPY, OP_JNZ:
		return 2
	case OP_INC, OP_DEC, OP_TGL, OP_OUT:
		return 1
	}

	panic(ErrOpcode{Op: op})
}
