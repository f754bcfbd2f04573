package i8080

import "github.com/pkg/errors"

// CYCLES holds the published cycle count for every opcode. Conditional
// jump/call/return instructions are charged their taken-path cost
// uniformly, regardless of whether the branch is actually taken.
var CYCLES = [256]int{
	4, 10, 7, 5, 5, 5, 7, 4, 4, 10, 7, 5, 5, 5, 7, 4,
	4, 10, 7, 5, 5, 5, 7, 4, 4, 10, 7, 5, 5, 5, 7, 4,
	4, 10, 16, 5, 5, 5, 7, 4, 4, 10, 16, 5, 5, 5, 7, 4,
	4, 10, 13, 5, 10, 10, 10, 4, 4, 10, 13, 5, 5, 5, 7, 4,
	5, 5, 5, 5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 7, 5,
	5, 5, 5, 5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 7, 5,
	5, 5, 5, 5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 7, 5,
	7, 7, 7, 7, 7, 7, 7, 7, 5, 5, 5, 5, 5, 5, 7, 5,
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	11, 10, 10, 10, 17, 11, 7, 11, 11, 10, 10, 10, 17, 17, 7, 11,
	11, 10, 10, 10, 17, 11, 7, 11, 11, 10, 10, 10, 17, 17, 7, 11,
	11, 10, 10, 18, 17, 11, 7, 11, 11, 5, 10, 5, 17, 17, 7, 11,
	11, 10, 10, 4, 17, 11, 7, 11, 11, 5, 10, 4, 17, 17, 7, 11,
}

// Step fetches, decodes, and executes a single instruction at m.Pc,
// returning the number of cycles it consumed and whether it was HLT.
func Step(m *Machine) (cycles int, halted bool, err error) {
	opcode := m.Read(m.Pc)
	pc := m.Pc
	m.Pc++

	switch opcode {
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38: // NOP (incl. undocumented aliases)

	case 0x01: // LXI B,d16
		m.SetBC(m.ReadWord(m.Pc))
		m.Pc += 2
	case 0x11: // LXI D,d16
		m.SetDE(m.ReadWord(m.Pc))
		m.Pc += 2
	case 0x21: // LXI H,d16
		m.SetHL(m.ReadWord(m.Pc))
		m.Pc += 2
	case 0x31: // LXI SP,d16
		m.Sp = m.ReadWord(m.Pc)
		m.Pc += 2

	case 0x02: // STAX B
		m.Write(m.BC(), m.A)
	case 0x12: // STAX D
		m.Write(m.DE(), m.A)
	case 0x0A: // LDAX B
		m.A = m.Read(m.BC())
	case 0x1A: // LDAX D
		m.A = m.Read(m.DE())

	case 0x03: // INX B
		m.SetBC(m.BC() + 1)
	case 0x13: // INX D
		m.SetDE(m.DE() + 1)
	case 0x23: // INX H
		m.SetHL(m.HL() + 1)
	case 0x33: // INX SP
		m.Sp++
	case 0x0B: // DCX B
		m.SetBC(m.BC() - 1)
	case 0x1B: // DCX D
		m.SetDE(m.DE() - 1)
	case 0x2B: // DCX H
		m.SetHL(m.HL() - 1)
	case 0x3B: // DCX SP
		m.Sp--

	case 0x04:
		m.B = m.Inr(m.B)
	case 0x0C:
		m.C = m.Inr(m.C)
	case 0x14:
		m.D = m.Inr(m.D)
	case 0x1C:
		m.E = m.Inr(m.E)
	case 0x24:
		m.H = m.Inr(m.H)
	case 0x2C:
		m.L = m.Inr(m.L)
	case 0x34:
		m.Write(m.HL(), m.Inr(m.Read(m.HL())))
	case 0x3C:
		m.A = m.Inr(m.A)

	case 0x05:
		m.B = m.Dcr(m.B)
	case 0x0D:
		m.C = m.Dcr(m.C)
	case 0x15:
		m.D = m.Dcr(m.D)
	case 0x1D:
		m.E = m.Dcr(m.E)
	case 0x25:
		m.H = m.Dcr(m.H)
	case 0x2D:
		m.L = m.Dcr(m.L)
	case 0x35:
		m.Write(m.HL(), m.Dcr(m.Read(m.HL())))
	case 0x3D:
		m.A = m.Dcr(m.A)

	case 0x06:
		m.B = m.Read(m.Pc)
		m.Pc++
	case 0x0E:
		m.C = m.Read(m.Pc)
		m.Pc++
	case 0x16:
		m.D = m.Read(m.Pc)
		m.Pc++
	case 0x1E:
		m.E = m.Read(m.Pc)
		m.Pc++
	case 0x26:
		m.H = m.Read(m.Pc)
		m.Pc++
	case 0x2E:
		m.L = m.Read(m.Pc)
		m.Pc++
	case 0x36:
		m.Write(m.HL(), m.Read(m.Pc))
		m.Pc++
	case 0x3E:
		m.A = m.Read(m.Pc)
		m.Pc++

	case 0x07: // RLC
		carry := m.A & 0x80
		m.A = (m.A << 1) | (carry >> 7)
		m.CY = carry != 0
	case 0x0F: // RRC
		carry := m.A & 0x01
		m.A = (m.A >> 1) | (carry << 7)
		m.CY = carry != 0
	case 0x17: // RAL
		var oldCarry byte
		if m.CY {
			oldCarry = 1
		}
		m.CY = m.A&0x80 != 0
		m.A = (m.A << 1) | oldCarry
	case 0x1F: // RAR
		var oldCarry byte
		if m.CY {
			oldCarry = 0x80
		}
		m.CY = m.A&0x01 != 0
		m.A = (m.A >> 1) | oldCarry

	case 0x09:
		r := uint32(m.HL()) + uint32(m.BC())
		m.CY = r > 0xFFFF
		m.SetHL(uint16(r))
	case 0x19:
		r := uint32(m.HL()) + uint32(m.DE())
		m.CY = r > 0xFFFF
		m.SetHL(uint16(r))
	case 0x29:
		r := uint32(m.HL()) + uint32(m.HL())
		m.CY = r > 0xFFFF
		m.SetHL(uint16(r))
	case 0x39:
		r := uint32(m.HL()) + uint32(m.Sp)
		m.CY = r > 0xFFFF
		m.SetHL(uint16(r))

	case 0x22: // SHLD a16
		addr := m.ReadWord(m.Pc)
		m.Pc += 2
		m.WriteWord(addr, m.HL())
	case 0x2A: // LHLD a16
		addr := m.ReadWord(m.Pc)
		m.Pc += 2
		m.SetHL(m.ReadWord(addr))
	case 0x32: // STA a16
		addr := m.ReadWord(m.Pc)
		m.Pc += 2
		m.Write(addr, m.A)
	case 0x3A: // LDA a16
		addr := m.ReadWord(m.Pc)
		m.Pc += 2
		m.A = m.Read(addr)

	case 0x27: // DAA
		m.Daa()
	case 0x2F: // CMA
		m.A = ^m.A
	case 0x37: // STC
		m.CY = true
	case 0x3F: // CMC
		m.CY = !m.CY

	case 0xEB: // XCHG
		m.D, m.H = m.H, m.D
		m.E, m.L = m.L, m.E
	case 0xE3: // XTHL
		lo := m.Read(m.Sp)
		hi := m.Read(m.Sp + 1)
		m.Write(m.Sp, m.L)
		m.Write(m.Sp+1, m.H)
		m.L, m.H = lo, hi
	case 0xF9: // SPHL
		m.Sp = m.HL()

	// MOV r,r' (0x40-0x7F, excluding 0x76 HLT)
	case 0x76:
		return CYCLES[opcode], true, nil

	case 0xC3, 0xCB: // JMP a16
		m.Pc = m.ReadWord(m.Pc)
	case 0xC2: // JNZ
		jumpIf(m, !m.Z)
	case 0xCA: // JZ
		jumpIf(m, m.Z)
	case 0xD2: // JNC
		jumpIf(m, !m.CY)
	case 0xDA: // JC
		jumpIf(m, m.CY)
	case 0xE2: // JPO
		jumpIf(m, !m.P)
	case 0xEA: // JPE
		jumpIf(m, m.P)
	case 0xF2: // JP
		jumpIf(m, !m.S)
	case 0xFA: // JM
		jumpIf(m, m.S)
	case 0xE9: // PCHL
		m.Pc = m.HL()

	case 0xCD, 0xDD, 0xED, 0xFD: // CALL a16
		addr := m.ReadWord(m.Pc)
		m.Pc += 2
		call(m, addr)
	case 0xC4: // CNZ
		callIf(m, !m.Z)
	case 0xCC: // CZ
		callIf(m, m.Z)
	case 0xD4: // CNC
		callIf(m, !m.CY)
	case 0xDC: // CC
		callIf(m, m.CY)
	case 0xE4: // CPO
		callIf(m, !m.P)
	case 0xEC: // CPE
		callIf(m, m.P)
	case 0xF4: // CP
		callIf(m, !m.S)
	case 0xFC: // CM
		callIf(m, m.S)

	case 0xC9, 0xD9: // RET
		ret(m)
	case 0xC0: // RNZ
		retIf(m, !m.Z)
	case 0xC8: // RZ
		retIf(m, m.Z)
	case 0xD0: // RNC
		retIf(m, !m.CY)
	case 0xD8: // RC
		retIf(m, m.CY)
	case 0xE0: // RPO
		retIf(m, !m.P)
	case 0xE8: // RPE
		retIf(m, m.P)
	case 0xF0: // RP
		retIf(m, !m.S)
	case 0xF8: // RM
		retIf(m, m.S)

	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF: // RST n
		call(m, uint16(opcode&0x38))

	case 0xC5: // PUSH B
		m.Push(m.B, m.C)
	case 0xD5: // PUSH D
		m.Push(m.D, m.E)
	case 0xE5: // PUSH H
		m.Push(m.H, m.L)
	case 0xF5: // PUSH PSW
		m.Push(m.A, m.PSW())
	case 0xC1: // POP B
		m.B, m.C = m.Pop()
	case 0xD1: // POP D
		m.D, m.E = m.Pop()
	case 0xE1: // POP H
		m.H, m.L = m.Pop()
	case 0xF1: // POP PSW
		var psw byte
		m.A, psw = m.Pop()
		m.SetPSW(psw)

	case 0xD3: // OUT d8: the port byte is skipped; Step performs no port I/O
		m.Pc++
	case 0xDB: // IN d8: the port byte is skipped; A is left unchanged
		m.Pc++

	case 0xF3: // DI
		m.DisableInterrupts()
	case 0xFB: // EI
		m.EnableInterrupts()

	case 0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87:
		m.A = m.Add(m.A, regOrMem(m, opcode&0x07), false)
	case 0x88, 0x89, 0x8A, 0x8B, 0x8C, 0x8D, 0x8E, 0x8F:
		m.A = m.Add(m.A, regOrMem(m, opcode&0x07), true)
	case 0x90, 0x91, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97:
		m.A = m.Sub(m.A, regOrMem(m, opcode&0x07), false)
	case 0x98, 0x99, 0x9A, 0x9B, 0x9C, 0x9D, 0x9E, 0x9F:
		m.A = m.Sub(m.A, regOrMem(m, opcode&0x07), true)
	case 0xA0, 0xA1, 0xA2, 0xA3, 0xA4, 0xA5, 0xA6, 0xA7:
		m.A = m.Ana(m.A, regOrMem(m, opcode&0x07))
	case 0xA8, 0xA9, 0xAA, 0xAB, 0xAC, 0xAD, 0xAE, 0xAF:
		m.A = m.Xra(m.A, regOrMem(m, opcode&0x07))
	case 0xB0, 0xB1, 0xB2, 0xB3, 0xB4, 0xB5, 0xB6, 0xB7:
		m.A = m.Ora(m.A, regOrMem(m, opcode&0x07))
	case 0xB8, 0xB9, 0xBA, 0xBB, 0xBC, 0xBD, 0xBE, 0xBF:
		m.Cmp(m.A, regOrMem(m, opcode&0x07))

	case 0xC6: // ADI d8
		m.A = m.Add(m.A, m.Read(m.Pc), false)
		m.Pc++
	case 0xCE: // ACI d8
		m.A = m.Add(m.A, m.Read(m.Pc), true)
		m.Pc++
	case 0xD6: // SUI d8
		m.A = m.Sub(m.A, m.Read(m.Pc), false)
		m.Pc++
	case 0xDE: // SBI d8
		m.A = m.Sub(m.A, m.Read(m.Pc), true)
		m.Pc++
	case 0xE6: // ANI d8
		m.A = m.Ana(m.A, m.Read(m.Pc))
		m.Pc++
	case 0xEE: // XRI d8
		m.A = m.Xra(m.A, m.Read(m.Pc))
		m.Pc++
	case 0xF6: // ORI d8
		m.A = m.Ora(m.A, m.Read(m.Pc))
		m.Pc++
	case 0xFE: // CPI d8
		m.Cmp(m.A, m.Read(m.Pc))
		m.Pc++

	default:
		if opcode >= 0x40 && opcode <= 0x7F {
			setReg(m, (opcode>>3)&0x07, regOrMem(m, opcode&0x07))
		} else {
			return 0, false, errors.Errorf("unimplemented opcode %#02x at %#04x", opcode, pc)
		}
	}

	return CYCLES[opcode], false, nil
}

// regOrMem returns the value of register index i (B,C,D,E,H,L,M,A order),
// reading through HL for index 6 (M).
func regOrMem(m *Machine, i byte) byte {
	switch i {
	case 0:
		return m.B
	case 1:
		return m.C
	case 2:
		return m.D
	case 3:
		return m.E
	case 4:
		return m.H
	case 5:
		return m.L
	case 6:
		return m.Read(m.HL())
	default:
		return m.A
	}
}

// setReg stores v into register index i, writing through HL for index 6 (M).
func setReg(m *Machine, i byte, v byte) {
	switch i {
	case 0:
		m.B = v
	case 1:
		m.C = v
	case 2:
		m.D = v
	case 3:
		m.E = v
	case 4:
		m.H = v
	case 5:
		m.L = v
	case 6:
		m.Write(m.HL(), v)
	default:
		m.A = v
	}
}

func jumpIf(m *Machine, cond bool) {
	addr := m.ReadWord(m.Pc)
	if cond {
		m.Pc = addr
	} else {
		m.Pc += 2
	}
}

func call(m *Machine, addr uint16) {
	m.Push(byte(m.Pc>>8), byte(m.Pc))
	m.Pc = addr
}

func callIf(m *Machine, cond bool) {
	addr := m.ReadWord(m.Pc)
	m.Pc += 2
	if cond {
		call(m, addr)
	}
}

func ret(m *Machine) {
	hi, lo := m.Pop()
	m.Pc = uint16(hi)<<8 | uint16(lo)
}

func retIf(m *Machine, cond bool) {
	if cond {
		ret(m)
	}
}
