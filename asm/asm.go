// Package asm assembles corevm assembly source into a memory image: a
// single-pass, line-oriented tokenizer feeding the isa codec.
package asm

import (
	"fmt"
	"strconv"
	"strings"

	"corevm/isa"
)

// Assemble translates source into an image: one encoded 32-bit word per
// successfully parsed instruction, in source order. It is a pure function
// of its input text.
//
// Lexical rules:
//   - input is split into lines by '\n'
//   - each line is split into at most 4 whitespace-delimited tokens;
//     tokens beyond the fourth are ignored
//   - a line whose first token begins with ';' or is empty is a comment
//     or blank line and is skipped; it does not consume an output address
//   - operand position 1 is the destination register if it begins with
//     'r'; when present as a register it also seeds the source register
//   - operand position 2 is the source register if it begins with 'r';
//     it overrides the seeded source from position 1
//   - any token in positions 1..3 that does not begin with 'r' and is
//     non-empty is parsed as a signed decimal immediate; the last such
//     token wins
//   - a token that fails numeric parsing is treated as zero
//
// An unrecognised opcode name is fatal: Assemble returns an error naming
// the offending instruction's index (the output address it would have
// taken) and token.
func Assemble(source string) ([]int32, error) {
	var image []int32

	for _, line := range strings.Split(source, "\n") {
		tokens := fields4(line)

		if tokens[0] == "" || strings.HasPrefix(tokens[0], ";") {
			continue
		}

		op, ok := isa.ByName(tokens[0])
		if !ok {
			return nil, fmt.Errorf("asm: invalid opcode for instruction %d (%s)", len(image), tokens[0])
		}

		var src, dst byte
		var imm int32

		if strings.HasPrefix(tokens[1], "r") {
			dst = parseRegister(tokens[1])
			src = dst
		}
		if strings.HasPrefix(tokens[2], "r") {
			src = parseRegister(tokens[2])
		}

		for _, tok := range tokens[1:4] {
			if tok != "" && !strings.HasPrefix(tok, "r") {
				imm = parseImmediate(tok)
			}
		}

		image = append(image, isa.Encode(op, src, dst, imm))
	}

	return image, nil
}

// fields4 splits line into exactly 4 whitespace-delimited tokens,
// padded at the end with empty strings. Tokens beyond the fourth are dropped.
func fields4(line string) [4]string {
	var out [4]string
	fields := strings.Fields(line)
	for i := 0; i < len(fields) && i < 4; i++ {
		out[i] = fields[i]
	}
	return out
}

// parseRegister extracts the numeric index from a register token like
// "r2". A malformed index parses leniently as 0, same as the immediate
// parser.
func parseRegister(tok string) byte {
	n, err := strconv.Atoi(tok[1:])
	if err != nil {
		return 0
	}
	return byte(n)
}

// parseImmediate parses a signed decimal literal. A token that fails to
// parse is treated as zero: a deliberate, quiet degradation rather than
// a parse error.
func parseImmediate(tok string) int32 {
	n, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}
