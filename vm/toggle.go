package vm

// Toggled returns the image of an instruction under tgl.
//
//	inc <-> dec
//	cpy <-> jnz, operands kept in order
//	tgl, out -> inc
//
// tgl and out have no inverse: toggling their image gives dec, not the
// original instruction.
func Toggled(ins Instruction) Instruction {
	switch ins.Op {
	case OP_INC:
		return Dec(ins.A)
	case OP_DEC, OP_TGL, OP_OUT:
		return Inc(ins.A)
	case OP_CPY:
		return Jnz(ins.A, ins.B)
	case OP_JNZ:
		return Cpy(ins.A, ins.B)
	}

	panic(ErrOpcode(ins))
}
