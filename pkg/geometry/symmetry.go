package geometry

// Transform is a signed permutation matrix, i.e. one element of the symmetry group of the cube
type Transform [3][3]int

// Group selects which part of the cube's symmetry group orientations are generated from
type Group int

const (
	Rotations               Group = iota // The 24 proper rotations
	RotationsAndReflections              // The 24 rotations followed by the 24 improper transforms
)

// All 48 signed permutations: rotations first, each block in the order of axis permutation and then sign pattern.
// The identity is the first element
var transforms = signedPermutations()

func (m Transform) Apply(c Coordinate) Coordinate {
	return Coordinate{
		m[0][0]*c[0] + m[0][1]*c[1] + m[0][2]*c[2],
		m[1][0]*c[0] + m[1][1]*c[1] + m[1][2]*c[2],
		m[2][0]*c[0] + m[2][1]*c[1] + m[2][2]*c[2],
	}
}

// Mult returns the composition that applies other first and m afterwards
func (m Transform) Mult(other Transform) Transform {
	var product Transform
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				product[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return product
}

func (m Transform) Determinant() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Transforms returns the group's elements in their fixed enumeration order
func (g Group) Transforms() []Transform {
	return transforms[:g.Order()]
}

func (g Group) Order() int {
	if g == RotationsAndReflections {
		return 48
	}
	return 24
}

func (g Group) String() string {
	if g == RotationsAndReflections {
		return "rotations+reflections"
	}
	return "rotations"
}

func signedPermutations() []Transform {
	permutations := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	rotations := make([]Transform, 0, 24)
	reflections := make([]Transform, 0, 24)
	for _, permutation := range permutations {
		for signs := range 8 {
			var transform Transform
			for row, column := range permutation {
				transform[row][column] = 1
				if signs&(1<<row) != 0 {
					transform[row][column] = -1
				}
			}

			if transform.Determinant() > 0 {
				rotations = append(rotations, transform)
			} else {
				reflections = append(reflections, transform)
			}
		}
	}
	return append(rotations, reflections...)
}
