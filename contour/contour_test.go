package contour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3MFConsortium/gladius-sub002/contour"
	"github.com/3MFConsortium/gladius-sub002/vec/v2"
)

func square(side float32) contour.PolyLine {
	return contour.PolyLine{
		Vertices: []v2.Vec{
			{X: 0, Y: 0},
			{X: side, Y: 0},
			{X: side, Y: side},
			{X: 0, Y: side},
		},
		IsClosed: true,
	}
}

func TestCalcArea_CCWSquareIsPositive(t *testing.T) {
	t.Parallel()
	poly := square(2)
	require.InDelta(t, 4.0, contour.CalcArea(&poly), 1e-6)
}

func TestCalcArea_CWSquareIsNegative(t *testing.T) {
	t.Parallel()
	poly := square(2)
	poly.Reverse()
	require.InDelta(t, -4.0, contour.CalcArea(&poly), 1e-6)
}

func TestIsClockwise(t *testing.T) {
	t.Parallel()
	ccw := square(1)
	require.False(t, contour.IsClockwise(&ccw))

	cw := square(1)
	cw.Reverse()
	require.True(t, contour.IsClockwise(&cw))
}

func TestIsDegenerate(t *testing.T) {
	t.Parallel()
	p := contour.NewPolyLine()
	require.True(t, p.IsDegenerate())

	p.Vertices = []v2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}}
	require.True(t, p.IsDegenerate())

	p.Vertices = append(p.Vertices, v2.Vec{X: 1, Y: 1})
	require.False(t, p.IsDegenerate())
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()
	p := square(1)
	clone := p.Clone()
	clone.Vertices[0].X = 99

	require.Equal(t, float32(0), p.Vertices[0].X)
	require.Equal(t, float32(99), clone.Vertices[0].X)
}

func TestClippingArea_Degenerate(t *testing.T) {
	t.Parallel()
	require.True(t, contour.ClippingArea{XMin: 0, XMax: 0, YMin: 0, YMax: 1}.Degenerate())
	require.False(t, contour.ClippingArea{XMin: 0, XMax: 1, YMin: 0, YMax: 1}.Degenerate())
}
