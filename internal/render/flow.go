package render

import "image/color"

// Figure 2: baseline vs. recognition response flow, two panels. Pure
// layout, no data.
func renderResponseFlow(ctx *Context, path string) error {
	const panelW = 1050
	c := newCanvas(2100, 1200)

	c.label("Figure 2: Recognition vs. Baseline Response Flow",
		1050, 40, 0.5, 0.5, boldFace(24), colEdge)

	learnerQuote := "\"I think dialectics is\nlike a spiral...\""

	type step struct {
		y      float64
		label  string
		detail string
	}

	panel := func(left float64, title string, boxFill, boxEdge color.Color, steps []step, outcome string, outFill, outEdge color.Color) {
		a := newAxes(c, 105, left, 1150)

		a.label(title, 5, 9.7, 0.5, 0.5, boldFace(21), colEdge)
		a.box(1.5, 8.2, 7, 1.1, learnerQuote, face(16), colIceBlue, colSteelBlue, colEdge)

		for _, s := range steps {
			a.box(1.5, s.y, 3.0, 1.1, s.label, boldFace(18), boxFill, boxEdge, colEdge)
			a.wrapped(s.detail, 6.5, s.y+0.55, 3.4, italicFace(14), colInk)
		}

		a.box(1.5, 2.2, 7, 1.2, outcome, boldFace(16), outFill, outEdge, colEdge)

		a.arrow(5.0, 8.2, 3.0, 7.9, colEdge, 2)
		a.arrow(3.0, 6.8, 3.0, 6.5, colEdge, 2)
		a.arrow(3.0, 5.4, 3.0, 5.1, colEdge, 2)
		a.arrow(3.0, 4.0, 3.0, 3.4, colEdge, 2)
	}

	panel(0, "Baseline Flow", colSilver, colSlate,
		[]step{
			{6.8, "Acknowledge", "\"That's an interesting\nobservation...\""},
			{5.4, "Redirect", "\"Let me explain what\ndialectics actually is...\""},
			{4.0, "Instruct", "\"Dialectics involves\nthesis, antithesis,\nsynthesis...\""},
		},
		"WAYPOINT\nLearner acknowledged, then redirected", colPaleRed, colRed)

	panel(panelW, "Recognition Flow", colPaleGreen, colGreen,
		[]step{
			{6.8, "Engage", "\"A spiral—that's a\npowerful metaphor...\""},
			{5.4, "Explore", "\"What makes you see\nit as circular rather\nthan linear?\""},
			{4.0, "Synthesize", "\"Your spiral captures\nsomething the textbook\nmisses...\""},
		},
		"SITE OF JOINT INQUIRY\nLearner's understanding shapes interaction", colPaleGreen, colGreen)

	return c.SavePNG(path)
}
