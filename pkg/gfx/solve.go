package gfx

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/joomcode/errorx"
	"gonum.org/v1/gonum/mat"
)

var (
	// Errors is the error namespace of the gfx package.
	Errors = errorx.NewNamespace("gfx")

	// SingularSystem is returned when a linear system has no stable unique solution.
	SingularSystem = Errors.NewType("singular_system")
)

// MaxCondition is the largest condition number Solve3 accepts.
const MaxCondition = 1e6

// Solve3 solves a*x = b by LU decomposition with partial pivoting.
func Solve3(a mgl32.Mat3, b mgl32.Vec3) (mgl32.Vec3, error) {
	m := mat.NewDense(3, 3, nil)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m.Set(row, col, float64(a.At(row, col)))
		}
	}

	var lu mat.LU
	lu.Factorize(m)

	cond := lu.Cond()
	if math.IsNaN(cond) || cond > MaxCondition {
		return mgl32.Vec3{}, SingularSystem.New("condition number %g exceeds %g", cond, float64(MaxCondition))
	}

	var x mat.VecDense
	rhs := mat.NewVecDense(3, []float64{float64(b[0]), float64(b[1]), float64(b[2])})
	if err := lu.SolveVecTo(&x, false, rhs); err != nil {
		return mgl32.Vec3{}, SingularSystem.Wrap(err, "lu solve")
	}

	out := mgl32.Vec3{float32(x.AtVec(0)), float32(x.AtVec(1)), float32(x.AtVec(2))}
	if !IsFinite(out) {
		return mgl32.Vec3{}, SingularSystem.New("non-finite solution %v", out)
	}
	return out, nil
}
