package hirtype

import "testing"

func TestEqual(t *testing.T) {
	sameVar := mkVar(1)

	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"bool equals bool", Bool{}, Bool{}, true},
		{"bool not field", Bool{}, FieldElement{}, false},
		{"same struct id and generics", Struct{ID: StructID{Local: 1}}, Struct{ID: StructID{Local: 1}}, true},
		{"different struct id", Struct{ID: StructID{Local: 1}}, Struct{ID: StructID{Local: 2}}, false},
		{"same variable cell", TypeVariableRef{Var: sameVar}, TypeVariableRef{Var: sameVar}, true},
		{"distinct variable cells", TypeVariableRef{Var: mkVar(2)}, TypeVariableRef{Var: mkVar(3)}, false},
		{"tuples elementwise", Tuple{Elements: []Type{Bool{}, FieldElement{}}}, Tuple{Elements: []Type{Bool{}, FieldElement{}}}, true},
		{"tuples differ in length", Tuple{Elements: []Type{Bool{}}}, Tuple{Elements: []Type{Bool{}, FieldElement{}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualFollowsBoundVariables(t *testing.T) {
	v := mkVar(9)
	v.Bind(Bool{})

	if !Equal(TypeVariableRef{Var: v}, Bool{}) {
		t.Error("Equal should follow a bound variable through to its binding")
	}
}
