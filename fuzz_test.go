package fixnum

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

type fuzzOp string

// This is the equivalent of passing -fixnum.fuzziter=2000 to 'go test':
const fuzzDefaultIterations = 2000

// These ops are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-fixnum.fuzzop=add -fixnum.fuzzop=sub', or
// you can use the short form '-fixnum.fuzzop=add,sub,mul'.
//
// If you add a new op, search for the string 'NEWOP' in this file for all the
// places you need to update.
const (
	fuzzAbs              fuzzOp = "abs"
	fuzzAdd              fuzzOp = "add"
	fuzzAnd              fuzzOp = "and"
	fuzzAndNot           fuzzOp = "andnot"
	fuzzAsFloat64        fuzzOp = "asfloat64"
	fuzzAsInt64          fuzzOp = "asint64"
	fuzzCmp              fuzzOp = "cmp"
	fuzzDec              fuzzOp = "dec"
	fuzzEqual            fuzzOp = "equal"
	fuzzGreaterOrEqualTo fuzzOp = "gte"
	fuzzGreaterThan      fuzzOp = "gt"
	fuzzInc              fuzzOp = "inc"
	fuzzLessOrEqualTo    fuzzOp = "lte"
	fuzzLessThan         fuzzOp = "lt"
	fuzzLsh              fuzzOp = "lsh"
	fuzzMul              fuzzOp = "mul"
	fuzzNeg              fuzzOp = "neg"
	fuzzNot              fuzzOp = "not"
	fuzzOr               fuzzOp = "or"
	fuzzParse            fuzzOp = "parse"
	fuzzQuo              fuzzOp = "quo"
	fuzzQuoRem           fuzzOp = "quorem"
	fuzzRem              fuzzOp = "rem"
	fuzzRsh              fuzzOp = "rsh"
	fuzzString           fuzzOp = "string"
	fuzzSub              fuzzOp = "sub"
	fuzzXor              fuzzOp = "xor"
)

// These widths, in bytes, are all enabled by default. You can instead pass
// them explicitly on the command line like so: '-fixnum.fuzzwidth=16'.
// 65 and 131 are also supported but are slow, so they are not on by default.
var allFuzzWidths = []int{1, 3, 8, 16, 32}

// allFuzzOps are active by default.
//
// NEWOP: Update this list if a NEW op is added otherwise it won't be
// enabled by default.
//
// Please keep this list alphabetised.
var allFuzzOps = []fuzzOp{
	fuzzAbs,
	fuzzAdd,
	fuzzAnd,
	fuzzAndNot,
	fuzzAsFloat64,
	fuzzAsInt64,
	fuzzCmp,
	fuzzDec,
	fuzzEqual,
	fuzzGreaterOrEqualTo,
	fuzzGreaterThan,
	fuzzInc,
	fuzzLessOrEqualTo,
	fuzzLessThan,
	fuzzLsh,
	fuzzMul,
	fuzzNeg,
	fuzzNot,
	fuzzOr,
	fuzzParse,
	fuzzQuo,
	fuzzQuoRem,
	fuzzRem,
	fuzzRsh,
	fuzzString,
	fuzzSub,
	fuzzXor,
}

// NEWOP: update this interface if a new op is added.
type fuzzOps interface {
	Name() string // Not an op

	Abs() error
	Add() error
	And() error
	AndNot() error
	AsFloat64() error
	AsInt64() error
	Cmp() error
	Dec() error
	Equal() error
	GreaterOrEqualTo() error
	GreaterThan() error
	Inc() error
	LessOrEqualTo() error
	LessThan() error
	Lsh() error
	Mul() error
	Neg() error
	Not() error
	Or() error
	Parse() error
	Quo() error
	QuoRem() error
	Rem() error
	Rsh() error
	String() error
	Sub() error
	Xor() error
}

// classic rando!
type rando struct {
	operands []*big.Int
	rng      *rand.Rand
}

func (r *rando) Operands() []*big.Int { return r.operands }

func (r *rando) Clear() {
	for i := range r.operands {
		r.operands[i] = nil
	}
	r.operands = r.operands[:0]
}

// samesies returns the number of arguments up to n - 1 that should be the same
// for this request. Only used for randos that are 'x2', 'x3', etc.
//
// We need this because the chance of even two random wide operands being
// the same is unfathomable.
func (r *rando) samesies(n int) int {
	const samesiesChance = 0.03
	if r.rng.Float64() < samesiesChance {
		return r.rng.Intn(n)
	}
	return 0
}

func (r *rando) BigInt(bits int) *big.Int {
	v := randomBigInt(r.rng, bits)
	r.operands = append(r.operands, v)
	return v
}

func (r *rando) BigIntx2(bits int) (b1, b2 *big.Int) {
	b1 = r.BigInt(bits)
	if r.samesies(2) > 0 {
		b2 = new(big.Int).Set(b1)
		r.operands = append(r.operands, b2)
	} else {
		b2 = r.BigInt(bits)
	}
	return b1, b2
}

// Shift returns a shift amount in [-2, bits+2), so that negative shifts and
// shifts past the width both turn up.
func (r *rando) Shift(bits int) *big.Int {
	v := big.NewInt(int64(r.rng.Intn(bits+4) - 2))
	r.operands = append(r.operands, v)
	return v
}

func checkEqualInt(u int, b int) error {
	if u != b {
		return fmt.Errorf("fixnum(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualBool(u bool, b bool) error {
	if u != b {
		return fmt.Errorf("fixnum(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqual[S Storage](i Int[S], b *big.Int) error {
	if i.String() != b.String() {
		return fmt.Errorf("fixnum(%s) != big(%s)\n%s", i.String(), b.String(), spew.Sdump(i.Raw()))
	}
	return nil
}

func TestFuzz(t *testing.T) {
	// fuzzOpsActive comes from the -fixnum.fuzzop flag, in TestMain:
	var runFuzzOps = fuzzOpsActive

	var source = &rando{rng: globalRNG} // Classic rando!
	var totalFailures int

	var fuzzImpls []fuzzOps

	for _, width := range fuzzWidthsActive {
		switch width {
		case 1:
			fuzzImpls = append(fuzzImpls, &fuzzInt[[1]byte]{source: source})
		case 3:
			fuzzImpls = append(fuzzImpls, &fuzzInt[[3]byte]{source: source})
		case 8:
			fuzzImpls = append(fuzzImpls, &fuzzInt[[8]byte]{source: source})
		case 16:
			fuzzImpls = append(fuzzImpls, &fuzzInt[[16]byte]{source: source})
		case 32:
			fuzzImpls = append(fuzzImpls, &fuzzInt[[32]byte]{source: source})
		case 65:
			fuzzImpls = append(fuzzImpls, &fuzzInt[[65]byte]{source: source})
		case 131:
			fuzzImpls = append(fuzzImpls, &fuzzInt[[131]byte]{source: source})
		default:
			t.Fatalf("unsupported fuzz width %d", width)
		}
	}

	for _, fuzzImpl := range fuzzImpls {
		var failures = make([]int, len(runFuzzOps))

		for opIdx, op := range runFuzzOps {
			for i := 0; i < fuzzIterations; i++ {
				source.Clear()

				var err error

				// NEWOP: add a new branch here in alphabetical order if a new
				// op is added.
				switch op {
				case fuzzAbs:
					err = fuzzImpl.Abs()
				case fuzzAdd:
					err = fuzzImpl.Add()
				case fuzzAnd:
					err = fuzzImpl.And()
				case fuzzAndNot:
					err = fuzzImpl.AndNot()
				case fuzzAsFloat64:
					err = fuzzImpl.AsFloat64()
				case fuzzAsInt64:
					err = fuzzImpl.AsInt64()
				case fuzzCmp:
					err = fuzzImpl.Cmp()
				case fuzzDec:
					err = fuzzImpl.Dec()
				case fuzzEqual:
					err = fuzzImpl.Equal()
				case fuzzGreaterOrEqualTo:
					err = fuzzImpl.GreaterOrEqualTo()
				case fuzzGreaterThan:
					err = fuzzImpl.GreaterThan()
				case fuzzInc:
					err = fuzzImpl.Inc()
				case fuzzLessOrEqualTo:
					err = fuzzImpl.LessOrEqualTo()
				case fuzzLessThan:
					err = fuzzImpl.LessThan()
				case fuzzLsh:
					err = fuzzImpl.Lsh()
				case fuzzMul:
					err = fuzzImpl.Mul()
				case fuzzNeg:
					err = fuzzImpl.Neg()
				case fuzzNot:
					err = fuzzImpl.Not()
				case fuzzOr:
					err = fuzzImpl.Or()
				case fuzzParse:
					err = fuzzImpl.Parse()
				case fuzzQuo:
					err = fuzzImpl.Quo()
				case fuzzQuoRem:
					err = fuzzImpl.QuoRem()
				case fuzzRem:
					err = fuzzImpl.Rem()
				case fuzzRsh:
					err = fuzzImpl.Rsh()
				case fuzzString:
					err = fuzzImpl.String()
				case fuzzSub:
					err = fuzzImpl.Sub()
				case fuzzXor:
					err = fuzzImpl.Xor()
				default:
					panic(fmt.Errorf("unsupported op %q", op))
				}

				if err != nil {
					failures[opIdx]++
					t.Logf("%s %s: %s\n", fuzzImpl.Name(), op.Print(source.Operands()...), err)
				}
			}
		}

		for opIdx, cnt := range failures {
			if cnt > 0 {
				totalFailures += cnt
				t.Logf("impl %s, op %s: %d/%d failed", fuzzImpl.Name(), string(runFuzzOps[opIdx]), cnt, fuzzIterations)
			}
		}
	}

	if totalFailures > 0 {
		t.Fail()
	}
}

func (op fuzzOp) Print(operands ...*big.Int) string {
	// NEWOP: please add a human-readale format for your op here; this is used
	// for reporting errors and should show the operation, i.e. "2 + 2".
	//
	// It should be safe to assume the appropriate number of operands are set
	// in 'operands'; if not, it's a bug to be fixed elsewhere.
	switch op {
	case fuzzAsFloat64,
		fuzzAsInt64,
		fuzzParse,
		fuzzString:
		s := strings.TrimRight(op.String(), "()")
		return fmt.Sprintf("%s(%d)", s, operands[0])

	case fuzzInc, fuzzDec:
		return fmt.Sprintf("%d%s", operands[0], op.String())

	case fuzzNeg, fuzzNot:
		return fmt.Sprintf("%s%d", op.String(), operands[0])

	case fuzzAbs:
		return fmt.Sprintf("|%d|", operands[0])

	case fuzzAdd,
		fuzzAnd,
		fuzzAndNot,
		fuzzLessOrEqualTo,
		fuzzLessThan,
		fuzzLsh,
		fuzzMul,
		fuzzOr,
		fuzzQuo,
		fuzzQuoRem,
		fuzzRem,
		fuzzRsh,
		fuzzXor,
		fuzzCmp,
		fuzzEqual,
		fuzzGreaterOrEqualTo,
		fuzzGreaterThan,
		fuzzSub:

		// simple binary case:
		return fmt.Sprintf("%d %s %d", operands[0], op.String(), operands[1])

	default:
		return string(op)
	}
}

func (op fuzzOp) String() string {
	// NEWOP: please add a short string representation of this op, as if
	// the operands were in a sum (if that's possible)
	switch op {
	case fuzzAbs:
		return "|x|"
	case fuzzAdd:
		return "+"
	case fuzzAnd:
		return "&"
	case fuzzAndNot:
		return "&^"
	case fuzzAsFloat64:
		return "float64()"
	case fuzzAsInt64:
		return "int64()"
	case fuzzCmp:
		return "<=>"
	case fuzzDec:
		return "--"
	case fuzzEqual:
		return "=="
	case fuzzGreaterThan:
		return ">"
	case fuzzGreaterOrEqualTo:
		return ">="
	case fuzzInc:
		return "++"
	case fuzzLessThan:
		return "<"
	case fuzzLessOrEqualTo:
		return "<="
	case fuzzLsh:
		return "<<"
	case fuzzMul:
		return "*"
	case fuzzNeg:
		return "-"
	case fuzzNot:
		return "^"
	case fuzzOr:
		return "|"
	case fuzzParse:
		return "parse()"
	case fuzzQuo:
		return "/"
	case fuzzQuoRem:
		return "/%"
	case fuzzRem:
		return "%"
	case fuzzRsh:
		return ">>"
	case fuzzString:
		return "string()"
	case fuzzSub:
		return "-"
	case fuzzXor:
		return "^"
	default:
		return string(op)
	}
}

// mulOperandBits caps the magnitude of the right operand of Mul. Mul adds
// the left operand once per unit of the right, so this keeps the fuzzer
// fast at every width.
const mulOperandBits = 12

type fuzzInt[S Storage] struct {
	source *rando
}

var _ fuzzOps = &fuzzInt[[16]byte]{}

func (f fuzzInt[S]) Name() string { return fmt.Sprintf("i%d", Bits[S]()) }

func (f fuzzInt[S]) bits() int { return Bits[S]() }

func (f fuzzInt[S]) x1() (*big.Int, Int[S]) {
	b1 := f.source.BigInt(f.bits())
	return b1, accFromBigInt[S](b1)
}

func (f fuzzInt[S]) x2() (b1, b2 *big.Int, i1, i2 Int[S]) {
	b1, b2 = f.source.BigIntx2(f.bits())
	return b1, b2, accFromBigInt[S](b1), accFromBigInt[S](b2)
}

func (f fuzzInt[S]) Abs() error {
	b1, i1 := f.x1()
	rb := simulateBigOverflow(new(big.Int).Abs(b1), f.bits())
	return checkEqual(i1.Abs(), rb)
}

func (f fuzzInt[S]) Inc() error {
	b1, i1 := f.x1()
	rb := simulateBigOverflow(new(big.Int).Add(b1, big1), f.bits())
	return checkEqual(i1.Inc(), rb)
}

func (f fuzzInt[S]) Dec() error {
	b1, i1 := f.x1()
	rb := simulateBigOverflow(new(big.Int).Sub(b1, big1), f.bits())
	return checkEqual(i1.Dec(), rb)
}

func (f fuzzInt[S]) Neg() error {
	b1, i1 := f.x1()
	rb := simulateBigOverflow(new(big.Int).Neg(b1), f.bits())
	return checkEqual(i1.Neg(), rb)
}

func (f fuzzInt[S]) Not() error {
	b1, i1 := f.x1()
	rb := new(big.Int).Not(b1)
	return checkEqual(i1.Not(), rb)
}

func (f fuzzInt[S]) Add() error {
	b1, b2, i1, i2 := f.x2()
	rb := simulateBigOverflow(new(big.Int).Add(b1, b2), f.bits())
	return checkEqual(i1.Add(i2), rb)
}

func (f fuzzInt[S]) Sub() error {
	b1, b2, i1, i2 := f.x2()
	rb := simulateBigOverflow(new(big.Int).Sub(b1, b2), f.bits())
	return checkEqual(i1.Sub(i2), rb)
}

func (f fuzzInt[S]) Mul() error {
	b1 := f.source.BigInt(f.bits())
	bits := mulOperandBits
	if bits > f.bits() {
		bits = f.bits()
	}
	b2 := f.source.BigInt(bits)
	i1, i2 := accFromBigInt[S](b1), accFromBigInt[S](b2)
	rb := simulateBigOverflow(new(big.Int).Mul(b1, b2), f.bits())
	return checkEqual(i1.Mul(i2), rb)
}

func (f fuzzInt[S]) Quo() error {
	b1, b2, i1, i2 := f.x2()
	if b2.Sign() == 0 {
		return nil // Just skip this iteration, we know what happens!
	}
	rb := simulateBigOverflow(new(big.Int).Quo(b1, b2), f.bits())
	ri, err := i1.Quo(i2)
	if err != nil {
		return err
	}
	return checkEqual(ri, rb)
}

func (f fuzzInt[S]) Rem() error {
	b1, b2, i1, i2 := f.x2()
	if b2.Sign() == 0 {
		return nil // Just skip this iteration, we know what happens!
	}
	rb := new(big.Int).Rem(b1, b2)
	ri, err := i1.Rem(i2)
	if err != nil {
		return err
	}
	return checkEqual(ri, rb)
}

func (f fuzzInt[S]) QuoRem() error {
	b1, b2, i1, i2 := f.x2()
	if b2.Sign() == 0 {
		return nil // Just skip this iteration, we know what happens!
	}

	rbq := simulateBigOverflow(new(big.Int).Quo(b1, b2), f.bits())
	rbr := new(big.Int).Rem(b1, b2)
	riq, rir, err := i1.QuoRem(i2)
	if err != nil {
		return err
	}
	if err := checkEqual(riq, rbq); err != nil {
		return err
	}
	if err := checkEqual(rir, rbr); err != nil {
		return err
	}
	return nil
}

func (f fuzzInt[S]) Cmp() error {
	b1, b2, i1, i2 := f.x2()
	return checkEqualInt(i1.Cmp(i2), b1.Cmp(b2))
}

func (f fuzzInt[S]) Equal() error {
	b1, b2, i1, i2 := f.x2()
	return checkEqualBool(i1.Equal(i2), b1.Cmp(b2) == 0)
}

func (f fuzzInt[S]) GreaterThan() error {
	b1, b2, i1, i2 := f.x2()
	return checkEqualBool(i1.GreaterThan(i2), b1.Cmp(b2) > 0)
}

func (f fuzzInt[S]) GreaterOrEqualTo() error {
	b1, b2, i1, i2 := f.x2()
	return checkEqualBool(i1.GreaterOrEqualTo(i2), b1.Cmp(b2) >= 0)
}

func (f fuzzInt[S]) LessThan() error {
	b1, b2, i1, i2 := f.x2()
	return checkEqualBool(i1.LessThan(i2), b1.Cmp(b2) < 0)
}

func (f fuzzInt[S]) LessOrEqualTo() error {
	b1, b2, i1, i2 := f.x2()
	return checkEqualBool(i1.LessOrEqualTo(i2), b1.Cmp(b2) <= 0)
}

func (f fuzzInt[S]) And() error {
	b1, b2, i1, i2 := f.x2()
	return checkEqual(i1.And(i2), new(big.Int).And(b1, b2))
}

func (f fuzzInt[S]) AndNot() error {
	b1, b2, i1, i2 := f.x2()
	return checkEqual(i1.AndNot(i2), new(big.Int).AndNot(b1, b2))
}

func (f fuzzInt[S]) Or() error {
	b1, b2, i1, i2 := f.x2()
	return checkEqual(i1.Or(i2), new(big.Int).Or(b1, b2))
}

func (f fuzzInt[S]) Xor() error {
	b1, b2, i1, i2 := f.x2()
	return checkEqual(i1.Xor(i2), new(big.Int).Xor(b1, b2))
}

func (f fuzzInt[S]) Lsh() error {
	b1 := f.source.BigInt(f.bits())
	by := f.source.Shift(f.bits())
	i1, iby := accFromBigInt[S](b1), accFromBigInt[S](by)

	rb := b1
	if by.Sign() > 0 {
		rb = simulateBigOverflow(new(big.Int).Lsh(b1, uint(by.Int64())), f.bits())
	}
	return checkEqual(i1.Lsh(iby), rb)
}

func (f fuzzInt[S]) Rsh() error {
	b1 := f.source.BigInt(f.bits())
	by := f.source.Shift(f.bits())
	i1, iby := accFromBigInt[S](b1), accFromBigInt[S](by)

	rb := b1
	if by.Sign() > 0 {
		// Logical shift: work on the unsigned bit pattern.
		u := new(big.Int).Mod(b1, wrapBig(f.bits()))
		rb = simulateBigOverflow(u.Rsh(u, uint(by.Int64())), f.bits())
	}
	return checkEqual(i1.Rsh(iby), rb)
}

func (f fuzzInt[S]) AsFloat64() error {
	b1, i1 := f.x1()
	bf, _ := new(big.Float).SetInt(b1).Float64()
	if rf := i1.AsFloat64(); rf != bf {
		return fmt.Errorf("fixnum(%g) != big(%g)", rf, bf)
	}
	return nil
}

func (f fuzzInt[S]) AsInt64() error {
	b1, i1 := f.x1()
	rb := simulateBigOverflow(b1, 64)
	if ri := i1.AsInt64(); ri != rb.Int64() {
		return fmt.Errorf("fixnum(%d) != big(%d)", ri, rb.Int64())
	}
	return checkEqualBool(i1.IsInt64(), b1.IsInt64())
}

func (f fuzzInt[S]) String() error {
	b1, i1 := f.x1()
	return checkEqual(i1, b1)
}

func (f fuzzInt[S]) Parse() error {
	b1 := f.source.BigInt(f.bits())
	ri, err := ParseInt[S](b1.String())
	if err != nil {
		return err
	}
	return checkEqual(ri, b1)
}
