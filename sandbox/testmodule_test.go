package sandbox

// A hand-assembled contract exercising the seal0 imports. The call export dispatches on the
// first input byte:
//
//	0 echo input           4 unreachable
//	1 store input, revert  5 fetch_random: status byte ++ output
//	2 store input          6 deposit event with input as data
//	3 return storage       7 return caller
//	8 deposit event, revert
//
// deploy stores its input and returns.

// Memory layout.
const (
	memInput    = 0
	memInLen    = 1024
	memOutLen   = 1028
	memKey      = 2048 // 32 zero bytes: the contract storage key
	memNoTopics = 3000 // a single zero byte: an empty SCALE Vec<Hash>
	memStatus   = 4095
	memOut      = 4096
	bufCap      = 512
)

// Import indices.
const (
	fnSealInput = iota
	fnSealReturn
	fnSealSetStorage
	fnSealGetStorage
	fnSealCallChainExtension
	fnSealDepositEvent
	fnSealCaller
)

const (
	opUnreachable = 0x00
	opIf          = 0x04
	opElse        = 0x05
	opEnd         = 0x0b
	opCall        = 0x10
	opDrop        = 0x1a
	opLocalGet    = 0x20
	opLocalSet    = 0x21
	opI32Load     = 0x28
	opI32Load8U   = 0x2d
	opI32Store    = 0x36
	opI32Store8   = 0x3a
	opI32Const    = 0x41
	opI32Eqz      = 0x45
	opI32Eq       = 0x46
	opI32Add      = 0x6a
	typeI32       = 0x7f
	blockVoid     = 0x40
)

func uleb(v uint32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
			continue
		}
		return append(out, b)
	}
}

func sleb(v int32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		done := (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0)
		if done {
			return append(out, b)
		}
		out = append(out, b|0x80)
	}
}

func name(s string) []byte {
	return append(uleb(uint32(len(s))), s...)
}

func vec(items ...[]byte) []byte {
	out := uleb(uint32(len(items)))
	for _, it := range items {
		out = append(out, it...)
	}
	return out
}

func section(id byte, body []byte) []byte {
	return append(append([]byte{id}, uleb(uint32(len(body)))...), body...)
}

// code is a tiny instruction builder.
type code []byte

func (c code) i32(v int32) code         { return append(append(c, opI32Const), sleb(v)...) }
func (c code) call(fn uint32) code      { return append(append(c, opCall), uleb(fn)...) }
func (c code) op(ops ...byte) code      { return append(c, ops...) }
func (c code) load(addr int32) code     { return c.i32(addr).op(opI32Load, 2, 0) }
func (c code) store(addr, v int32) code { return c.i32(addr).i32(v).op(opI32Store, 2, 0) }

// sealReturn returns flags and the memory range [ptr, ptr+len) where len is in lenAddr.
func (c code) sealReturn(flags, ptr, lenAddr int32) code {
	return c.i32(flags).i32(ptr).load(lenAddr).call(fnSealReturn)
}

// when runs body if the opcode local equals v.
func (c code) when(v int32, body code) code {
	c = c.op(opLocalGet, 0).i32(v).op(opI32Eq, opIf, blockVoid)
	return append(c, body...).op(opEnd)
}

func readInput() code {
	return code{}.store(memInLen, bufCap).i32(memInput).i32(memInLen).call(fnSealInput)
}

func storeInput() code {
	return code{}.i32(memKey).i32(memInput).load(memInLen).call(fnSealSetStorage)
}

func depositInput() code {
	return code{}.i32(memNoTopics).i32(1).i32(memInput).load(memInLen).call(fnSealDepositEvent)
}

func deployBody() code {
	c := readInput()
	c = append(c, storeInput()...)
	return c.i32(0).i32(0).i32(0).call(fnSealReturn)
}

func callBody() code {
	c := readInput()
	c = c.i32(memInput).op(opI32Load8U, 0, 0, opLocalSet, 0)

	c = c.when(0, code{}.sealReturn(0, memInput, memInLen))
	c = c.when(1, append(storeInput(), code{}.i32(1).i32(0).i32(0).call(fnSealReturn)...))
	c = c.when(2, append(storeInput(), code{}.i32(0).i32(0).i32(0).call(fnSealReturn)...))
	c = c.when(3, code{}.
		store(memOutLen, bufCap).
		i32(memKey).i32(memOut).i32(memOutLen).call(fnSealGetStorage).
		op(opI32Eqz, opIf, blockVoid).
		sealReturn(0, memOut, memOutLen).
		op(opElse).
		i32(0).i32(0).i32(0).call(fnSealReturn).
		op(opEnd))
	c = c.when(4, code{}.op(opUnreachable))
	c = c.when(5, code{}.
		store(memOutLen, bufCap).
		i32(memStatus). // address operand of the store8 below
		i32(2001).i32(0).i32(0).i32(memOut).i32(memOutLen).call(fnSealCallChainExtension).
		op(opI32Store8, 0, 0).
		i32(0).i32(memStatus).load(memOutLen).i32(1).op(opI32Add).call(fnSealReturn))
	c = c.when(6, append(depositInput(), code{}.i32(0).i32(0).i32(0).call(fnSealReturn)...))
	c = c.when(7, code{}.
		store(memOutLen, 32).
		i32(memOut).i32(memOutLen).call(fnSealCaller).
		sealReturn(0, memOut, memOutLen))
	c = c.when(8, append(depositInput(), code{}.i32(1).i32(0).i32(0).call(fnSealReturn)...))
	return c
}

func body(locals int, c code) []byte {
	var decl []byte
	if locals > 0 {
		decl = vec(append(uleb(uint32(locals)), typeI32))
	} else {
		decl = vec()
	}
	fn := append(decl, c...)
	fn = append(fn, opEnd)
	return append(uleb(uint32(len(fn))), fn...)
}

func functype(params, results int) []byte {
	p := make([][]byte, params)
	for i := range p {
		p[i] = []byte{typeI32}
	}
	r := make([][]byte, results)
	for i := range r {
		r[i] = []byte{typeI32}
	}
	return append(append([]byte{0x60}, vec(p...)...), vec(r...)...)
}

func sealImport(field string, typeIdx uint32) []byte {
	out := append(name("seal0"), name(field)...)
	return append(append(out, 0x00), uleb(typeIdx)...)
}

// testContract assembles the module described above.
func testContract() []byte {
	types := vec(
		functype(0, 0), // 0: deploy, call
		functype(2, 0), // 1: seal_input, seal_caller
		functype(3, 0), // 2: seal_return, seal_set_storage
		functype(3, 1), // 3: seal_get_storage
		functype(4, 0), // 4: seal_deposit_event
		functype(5, 1), // 5: seal_call_chain_extension
	)
	imports := vec(
		sealImport("seal_input", 1),
		sealImport("seal_return", 2),
		sealImport("seal_set_storage", 2),
		sealImport("seal_get_storage", 3),
		sealImport("seal_call_chain_extension", 5),
		sealImport("seal_deposit_event", 4),
		sealImport("seal_caller", 1),
	)
	funcs := vec(uleb(0), uleb(0))
	memory := vec([]byte{0x00, 0x01})
	exports := vec(
		append(name("memory"), 0x02, 0x00),
		append(name("deploy"), append([]byte{0x00}, uleb(7)...)...),
		append(name("call"), append([]byte{0x00}, uleb(8)...)...),
	)
	codes := vec(body(0, deployBody()), body(1, callBody()))

	mod := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	mod = append(mod, section(1, types)...)
	mod = append(mod, section(2, imports)...)
	mod = append(mod, section(3, funcs)...)
	mod = append(mod, section(5, memory)...)
	mod = append(mod, section(7, exports)...)
	mod = append(mod, section(10, codes)...)
	return mod
}
