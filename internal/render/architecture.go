package render

// Figure 1: the ego/superego tutor architecture. Pure layout, no data.
func renderArchitecture(ctx *Context, path string) error {
	c := newCanvas(1800, 1050)
	a := newAxes(c, 150, 0, 1050)

	title := boldFace(24)
	big := boldFace(21)
	med := boldFace(18)
	small := face(15)
	italic := italicFace(15)

	c.label("Figure 1: Ego/Superego Architecture", 900, 40, 0.5, 0.5, title, colEdge)

	// Tutor system container.
	c.roundedBox(a.px(0.3), a.py(6.5), 8.9*150, 6.0*150, "", nil, colPaper, hex(0x666666), colEdge)
	a.label("Tutor System", 4.75, 6.2, 0.5, 0.5, boldFace(22), hex(0x444444))

	a.box(0.8, 3.5, 2.2, 1.2, "Writing Pad\n(Memory)", med, colMemBlue, colEdge, colEdge)
	a.box(4.0, 3.5, 2.0, 1.2, "Ego", big, colMint, colEdge, colEdge)
	a.box(4.0, 1.2, 2.0, 1.2, "Superego", big, colYellow, colEdge, colEdge)
	a.box(7.0, 1.2, 2.0, 1.2, "Accept /\nModify / Reject", med, colPaleRed, colEdge, colEdge)
	a.box(7.0, 3.5, 2.0, 1.2, "Final\nSuggestion", med, colPaleGreen, colEdge, colEdge)

	// Learner sits outside the container.
	a.box(9.8, 3.5, 1.8, 1.2, "Learner", big, colLavender, colEdge, colEdge)

	// Writing pad feeds the ego.
	a.arrow(3.0, 4.1, 4.0, 4.1, colEdge, 2)
	a.wrapped("Memory\ntraces", 3.5, 4.55, 1.2, italic, colInk)

	// Ego proposes, superego passes verdict.
	a.arrow(5.0, 3.5, 5.0, 2.4, colEdge, 2)
	a.label("Proposal", 5.15, 2.95, 0, 0.5, small, colInk)
	a.arrow(6.0, 1.8, 7.0, 1.8, colEdge, 2)
	a.label("Verdict", 6.5, 2.05, 0.5, 1, small, colInk)

	// Rejected proposals loop back for revision.
	a.curvedArrow(7.5, 2.4, 6.2, 3.4, 5.5, 3.5, colDarkRed, 2, false)
	a.label("Revise", 7.0, 3.15, 0.5, 0.5, italicFace(15), colDarkRed)

	// Accepted proposals become the final suggestion.
	a.arrow(8.0, 2.4, 8.0, 3.5, colGreen, 2)
	a.label("Accept", 8.15, 2.95, 0, 0.5, small, colGreen)

	a.arrow(9.0, 4.1, 9.8, 4.1, colEdge, 2)

	// Learner responses feed the writing pad for future encounters.
	a.curvedArrow(10.7, 3.5, 6.3, 1.0, 1.9, 3.5, colPurple, 2, true)
	a.label("Learner responses shape future encounters", 6.0, 0.85, 0.5, 0.5, italic, colPurple)

	return c.SavePNG(path)
}
