package types

// BaseType is one of the closed set of scalar types a uniform field can use.
type BaseType uint8

const (
	// NoBase is the zero value and never produced by the parser.
	NoBase BaseType = iota
	F32
	F64
	I32
	I64
	Byte

	numBaseTypes
)

type baseInfo struct {
	token string
	size  int
	ctype string
}

// baseTable is indexed by BaseType; its length follows numBaseTypes, so a
// new variant cannot be added without growing the table.
var baseTable = [numBaseTypes]baseInfo{
	NoBase: {},
	F32:    {token: "f32", size: 4, ctype: "float"},
	F64:    {token: "f64", size: 8, ctype: "double"},
	I32:    {token: "i32", size: 4, ctype: "int"},
	I64:    {token: "i64", size: 8, ctype: "long"},
	Byte:   {token: "byte", size: 1, ctype: "char"},
}

// LookupBase resolves a scalar token such as "f32".
func LookupBase(token string) (BaseType, bool) {
	for b := F32; b < numBaseTypes; b++ {
		if baseTable[b].token == token {
			return b, true
		}
	}
	return NoBase, false
}

// Bases lists every valid scalar type in declaration order.
func Bases() []BaseType {
	out := make([]BaseType, 0, numBaseTypes-1)
	for b := F32; b < numBaseTypes; b++ {
		out = append(out, b)
	}
	return out
}

func (b BaseType) Valid() bool {
	return b > NoBase && b < numBaseTypes
}

func (b BaseType) info() baseInfo {
	if !b.Valid() {
		return baseInfo{}
	}
	return baseTable[b]
}

// Size returns the scalar size in bytes.
func (b BaseType) Size() int {
	return b.info().size
}

// Alignment of a scalar is its size.
func (b BaseType) Alignment() int {
	return b.Size()
}

// CType returns the C spelling of the scalar.
func (b BaseType) CType() string {
	return b.info().ctype
}

// Declare renders a C declarator for a variable of this scalar type.
func (b BaseType) Declare(name string) string {
	return b.CType() + " " + name
}

func (b BaseType) String() string {
	if !b.Valid() {
		return "<invalid>"
	}
	return b.info().token
}
