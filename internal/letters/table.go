package letters

// Reference stroke data for the 52 supported cursive glyphs.
//
// Coordinates live in the unit square. Lowercase bodies sit between
// the x-height line (y ~ 0.40) and the baseline (y ~ 0.66), ascenders
// reach y ~ 0.14 and descenders y ~ 0.90; capitals span y ~ 0.14 to
// the baseline. Checkpoints are ordered along the natural pen path.
// Letters needing pen lifts (i, j, t, x, F, H, K, T, X) are split
// into multiple strokes, completed in order.
var table = map[rune][]Stroke{
	'a': def([]Checkpoint{
		ck(0.62, 0.40), ck(0.46, 0.34), ck(0.32, 0.40), ck(0.26, 0.52),
		ck(0.32, 0.63), ck(0.46, 0.66), ck(0.60, 0.58), ck(0.64, 0.44),
		ck(0.66, 0.60), ck(0.72, 0.66), ck(0.80, 0.62),
	}),
	'b': def([]Checkpoint{
		ck(0.22, 0.62), ck(0.30, 0.50), ck(0.38, 0.30), ck(0.42, 0.14),
		ck(0.40, 0.32), ck(0.38, 0.52), ck(0.40, 0.64), ck(0.50, 0.66),
		ck(0.60, 0.58), ck(0.62, 0.48), ck(0.70, 0.50),
	}),
	'c': def([]Checkpoint{
		ck(0.64, 0.42), ck(0.50, 0.36), ck(0.36, 0.40), ck(0.30, 0.52),
		ck(0.36, 0.63), ck(0.50, 0.66), ck(0.64, 0.60), ck(0.72, 0.64),
	}),
	'd': def([]Checkpoint{
		ck(0.60, 0.40), ck(0.44, 0.34), ck(0.32, 0.42), ck(0.28, 0.54),
		ck(0.34, 0.64), ck(0.48, 0.66), ck(0.58, 0.56), ck(0.62, 0.36),
		ck(0.64, 0.16), ck(0.64, 0.50), ck(0.68, 0.64), ck(0.78, 0.62),
	}),
	'e': def([]Checkpoint{
		ck(0.30, 0.54), ck(0.44, 0.48), ck(0.54, 0.42), ck(0.50, 0.34),
		ck(0.38, 0.38), ck(0.30, 0.50), ck(0.34, 0.62), ck(0.48, 0.66),
		ck(0.62, 0.62), ck(0.72, 0.64),
	}),
	'f': def([]Checkpoint{
		ck(0.30, 0.60), ck(0.40, 0.40), ck(0.50, 0.20), ck(0.56, 0.10),
		ck(0.52, 0.26), ck(0.46, 0.48), ck(0.42, 0.70), ck(0.40, 0.88),
		ck(0.46, 0.78), ck(0.56, 0.62),
	}),
	'g': def([]Checkpoint{
		ck(0.60, 0.40), ck(0.44, 0.34), ck(0.32, 0.42), ck(0.28, 0.54),
		ck(0.34, 0.64), ck(0.48, 0.66), ck(0.58, 0.56), ck(0.62, 0.42),
		ck(0.62, 0.62), ck(0.60, 0.80), ck(0.52, 0.90), ck(0.44, 0.84),
		ck(0.50, 0.70),
	}),
	'h': def([]Checkpoint{
		ck(0.22, 0.62), ck(0.30, 0.46), ck(0.36, 0.28), ck(0.40, 0.14),
		ck(0.38, 0.34), ck(0.36, 0.54), ck(0.36, 0.66), ck(0.44, 0.50),
		ck(0.54, 0.42), ck(0.62, 0.48), ck(0.64, 0.60), ck(0.74, 0.64),
	}),
	'i': def(
		[]Checkpoint{
			ck(0.30, 0.62), ck(0.40, 0.48), ck(0.46, 0.40), ck(0.48, 0.52),
			ck(0.50, 0.64), ck(0.60, 0.64),
		},
		[]Checkpoint{ck(0.46, 0.28), ck(0.48, 0.26)},
	),
	'j': def(
		[]Checkpoint{
			ck(0.34, 0.62), ck(0.44, 0.48), ck(0.50, 0.40), ck(0.52, 0.56),
			ck(0.52, 0.74), ck(0.46, 0.88), ck(0.36, 0.90), ck(0.32, 0.80),
		},
		[]Checkpoint{ck(0.50, 0.28), ck(0.52, 0.26)},
	),
	'k': def([]Checkpoint{
		ck(0.22, 0.62), ck(0.30, 0.44), ck(0.36, 0.26), ck(0.40, 0.12),
		ck(0.38, 0.36), ck(0.36, 0.58), ck(0.36, 0.66), ck(0.52, 0.42),
		ck(0.42, 0.54), ck(0.56, 0.66), ck(0.66, 0.62),
	}),
	'l': def([]Checkpoint{
		ck(0.28, 0.62), ck(0.38, 0.44), ck(0.46, 0.24), ck(0.50, 0.12),
		ck(0.46, 0.30), ck(0.42, 0.50), ck(0.42, 0.66), ck(0.52, 0.66),
		ck(0.62, 0.60),
	}),
	'm': def([]Checkpoint{
		ck(0.14, 0.64), ck(0.20, 0.48), ck(0.26, 0.40), ck(0.30, 0.52),
		ck(0.32, 0.64), ck(0.38, 0.48), ck(0.44, 0.40), ck(0.48, 0.52),
		ck(0.50, 0.64), ck(0.56, 0.48), ck(0.62, 0.40), ck(0.66, 0.52),
		ck(0.68, 0.64), ck(0.78, 0.62),
	}),
	'n': def([]Checkpoint{
		ck(0.22, 0.64), ck(0.28, 0.48), ck(0.34, 0.40), ck(0.38, 0.52),
		ck(0.40, 0.64), ck(0.46, 0.48), ck(0.54, 0.40), ck(0.58, 0.52),
		ck(0.60, 0.64), ck(0.70, 0.62),
	}),
	'o': def([]Checkpoint{
		ck(0.56, 0.38), ck(0.42, 0.34), ck(0.30, 0.42), ck(0.26, 0.54),
		ck(0.32, 0.64), ck(0.46, 0.66), ck(0.56, 0.58), ck(0.58, 0.46),
		ck(0.52, 0.40), ck(0.62, 0.44), ck(0.72, 0.48),
	}),
	'p': def([]Checkpoint{
		ck(0.20, 0.62), ck(0.28, 0.50), ck(0.34, 0.40), ck(0.36, 0.58),
		ck(0.38, 0.78), ck(0.38, 0.92), ck(0.38, 0.72), ck(0.40, 0.52),
		ck(0.46, 0.40), ck(0.56, 0.42), ck(0.60, 0.52), ck(0.54, 0.62),
		ck(0.44, 0.64), ck(0.58, 0.66),
	}),
	'q': def([]Checkpoint{
		ck(0.58, 0.40), ck(0.44, 0.34), ck(0.32, 0.42), ck(0.28, 0.54),
		ck(0.34, 0.64), ck(0.46, 0.66), ck(0.56, 0.56), ck(0.60, 0.42),
		ck(0.60, 0.62), ck(0.58, 0.78), ck(0.60, 0.90), ck(0.68, 0.84),
		ck(0.72, 0.72),
	}),
	'r': def([]Checkpoint{
		ck(0.24, 0.62), ck(0.32, 0.50), ck(0.38, 0.40), ck(0.40, 0.50),
		ck(0.46, 0.42), ck(0.54, 0.40), ck(0.56, 0.50), ck(0.58, 0.62),
		ck(0.68, 0.64),
	}),
	's': def([]Checkpoint{
		ck(0.28, 0.62), ck(0.38, 0.48), ck(0.46, 0.38), ck(0.50, 0.46),
		ck(0.42, 0.54), ck(0.36, 0.62), ck(0.44, 0.66), ck(0.56, 0.64),
		ck(0.64, 0.60),
	}),
	't': def(
		[]Checkpoint{
			ck(0.32, 0.62), ck(0.40, 0.44), ck(0.46, 0.26), ck(0.48, 0.16),
			ck(0.46, 0.36), ck(0.44, 0.56), ck(0.46, 0.66), ck(0.56, 0.64),
		},
		[]Checkpoint{ck(0.32, 0.36), ck(0.44, 0.34), ck(0.58, 0.34)},
	),
	'u': def([]Checkpoint{
		ck(0.22, 0.42), ck(0.26, 0.56), ck(0.32, 0.66), ck(0.42, 0.62),
		ck(0.48, 0.50), ck(0.52, 0.40), ck(0.54, 0.56), ck(0.58, 0.66),
		ck(0.68, 0.62),
	}),
	'v': def([]Checkpoint{
		ck(0.24, 0.42), ck(0.30, 0.54), ck(0.38, 0.64), ck(0.46, 0.56),
		ck(0.52, 0.46), ck(0.56, 0.40), ck(0.62, 0.46), ck(0.70, 0.44),
	}),
	'w': def([]Checkpoint{
		ck(0.16, 0.42), ck(0.20, 0.56), ck(0.26, 0.66), ck(0.34, 0.56),
		ck(0.38, 0.44), ck(0.42, 0.56), ck(0.46, 0.66), ck(0.54, 0.56),
		ck(0.60, 0.44), ck(0.66, 0.50), ck(0.74, 0.48),
	}),
	'x': def(
		[]Checkpoint{
			ck(0.26, 0.42), ck(0.36, 0.52), ck(0.46, 0.60), ck(0.56, 0.66),
		},
		[]Checkpoint{
			ck(0.56, 0.42), ck(0.46, 0.52), ck(0.36, 0.60), ck(0.26, 0.66),
		},
	),
	'y': def([]Checkpoint{
		ck(0.24, 0.42), ck(0.28, 0.56), ck(0.34, 0.66), ck(0.44, 0.58),
		ck(0.50, 0.46), ck(0.54, 0.40), ck(0.56, 0.60), ck(0.56, 0.78),
		ck(0.48, 0.90), ck(0.38, 0.86), ck(0.42, 0.72),
	}),
	'z': def([]Checkpoint{
		ck(0.26, 0.44), ck(0.40, 0.40), ck(0.54, 0.42), ck(0.44, 0.54),
		ck(0.34, 0.64), ck(0.48, 0.66), ck(0.56, 0.74), ck(0.52, 0.86),
		ck(0.42, 0.90), ck(0.36, 0.80),
	}),

	'A': def([]Checkpoint{
		ck(0.70, 0.26), ck(0.52, 0.16), ck(0.34, 0.24), ck(0.24, 0.42),
		ck(0.28, 0.58), ck(0.44, 0.66), ck(0.60, 0.56), ck(0.68, 0.36),
		ck(0.70, 0.54), ck(0.74, 0.66), ck(0.84, 0.62),
	}),
	'B': def([]Checkpoint{
		ck(0.26, 0.66), ck(0.30, 0.48), ck(0.34, 0.28), ck(0.36, 0.14),
		ck(0.48, 0.16), ck(0.56, 0.26), ck(0.50, 0.38), ck(0.38, 0.42),
		ck(0.52, 0.44), ck(0.62, 0.54), ck(0.56, 0.64), ck(0.42, 0.66),
		ck(0.58, 0.66),
	}),
	'C': def([]Checkpoint{
		ck(0.70, 0.24), ck(0.54, 0.14), ck(0.36, 0.20), ck(0.26, 0.38),
		ck(0.26, 0.54), ck(0.36, 0.66), ck(0.54, 0.66), ck(0.68, 0.58),
	}),
	'D': def([]Checkpoint{
		ck(0.30, 0.66), ck(0.34, 0.46), ck(0.38, 0.26), ck(0.40, 0.14),
		ck(0.54, 0.16), ck(0.66, 0.28), ck(0.68, 0.46), ck(0.60, 0.60),
		ck(0.46, 0.66), ck(0.34, 0.64),
	}),
	'E': def([]Checkpoint{
		ck(0.66, 0.22), ck(0.52, 0.14), ck(0.38, 0.20), ck(0.34, 0.32),
		ck(0.44, 0.38), ck(0.34, 0.44), ck(0.28, 0.56), ck(0.36, 0.66),
		ck(0.52, 0.66), ck(0.64, 0.58),
	}),
	'F': def(
		[]Checkpoint{
			ck(0.68, 0.16), ck(0.52, 0.14), ck(0.38, 0.18), ck(0.46, 0.30),
			ck(0.44, 0.46), ck(0.42, 0.60), ck(0.40, 0.66),
		},
		[]Checkpoint{ck(0.32, 0.42), ck(0.44, 0.40), ck(0.56, 0.40)},
	),
	'G': def([]Checkpoint{
		ck(0.70, 0.24), ck(0.54, 0.14), ck(0.36, 0.20), ck(0.26, 0.38),
		ck(0.28, 0.56), ck(0.40, 0.66), ck(0.56, 0.64), ck(0.62, 0.52),
		ck(0.52, 0.48), ck(0.66, 0.50),
	}),
	'H': def(
		[]Checkpoint{
			ck(0.30, 0.16), ck(0.30, 0.34), ck(0.32, 0.52), ck(0.34, 0.66),
		},
		[]Checkpoint{
			ck(0.64, 0.14), ck(0.62, 0.30), ck(0.46, 0.40), ck(0.60, 0.44),
			ck(0.60, 0.56), ck(0.62, 0.66), ck(0.72, 0.62),
		},
	),
	'I': def([]Checkpoint{
		ck(0.44, 0.66), ck(0.40, 0.50), ck(0.38, 0.34), ck(0.40, 0.18),
		ck(0.50, 0.14), ck(0.58, 0.20), ck(0.48, 0.34), ck(0.44, 0.52),
		ck(0.46, 0.66), ck(0.56, 0.62),
	}),
	'J': def([]Checkpoint{
		ck(0.52, 0.14), ck(0.56, 0.30), ck(0.56, 0.50), ck(0.54, 0.70),
		ck(0.48, 0.86), ck(0.38, 0.90), ck(0.30, 0.82), ck(0.34, 0.70),
	}),
	'K': def(
		[]Checkpoint{
			ck(0.30, 0.14), ck(0.32, 0.32), ck(0.34, 0.50), ck(0.36, 0.66),
		},
		[]Checkpoint{
			ck(0.66, 0.16), ck(0.54, 0.30), ck(0.42, 0.42), ck(0.54, 0.54),
			ck(0.64, 0.66),
		},
	),
	'L': def([]Checkpoint{
		ck(0.62, 0.18), ck(0.48, 0.14), ck(0.36, 0.22), ck(0.38, 0.38),
		ck(0.34, 0.54), ck(0.28, 0.64), ck(0.40, 0.66), ck(0.54, 0.64),
		ck(0.66, 0.60),
	}),
	'M': def([]Checkpoint{
		ck(0.14, 0.66), ck(0.20, 0.44), ck(0.26, 0.22), ck(0.30, 0.14),
		ck(0.34, 0.32), ck(0.38, 0.52), ck(0.42, 0.66), ck(0.48, 0.44),
		ck(0.54, 0.22), ck(0.58, 0.14), ck(0.62, 0.34), ck(0.66, 0.54),
		ck(0.70, 0.66), ck(0.80, 0.60),
	}),
	'N': def([]Checkpoint{
		ck(0.22, 0.66), ck(0.28, 0.44), ck(0.34, 0.22), ck(0.38, 0.14),
		ck(0.44, 0.32), ck(0.52, 0.52), ck(0.58, 0.66), ck(0.64, 0.44),
		ck(0.70, 0.22), ck(0.74, 0.14),
	}),
	'O': def([]Checkpoint{
		ck(0.60, 0.20), ck(0.44, 0.14), ck(0.30, 0.22), ck(0.24, 0.40),
		ck(0.28, 0.58), ck(0.42, 0.66), ck(0.58, 0.62), ck(0.66, 0.46),
		ck(0.62, 0.28), ck(0.70, 0.24),
	}),
	'P': def([]Checkpoint{
		ck(0.30, 0.66), ck(0.34, 0.46), ck(0.38, 0.26), ck(0.40, 0.14),
		ck(0.52, 0.14), ck(0.62, 0.22), ck(0.60, 0.34), ck(0.48, 0.40),
		ck(0.38, 0.40),
	}),
	'Q': def([]Checkpoint{
		ck(0.60, 0.20), ck(0.44, 0.14), ck(0.30, 0.22), ck(0.24, 0.40),
		ck(0.28, 0.58), ck(0.42, 0.66), ck(0.56, 0.62), ck(0.64, 0.48),
		ck(0.52, 0.56), ck(0.62, 0.66), ck(0.74, 0.70),
	}),
	'R': def([]Checkpoint{
		ck(0.30, 0.66), ck(0.34, 0.46), ck(0.38, 0.26), ck(0.40, 0.14),
		ck(0.52, 0.14), ck(0.62, 0.22), ck(0.60, 0.34), ck(0.48, 0.40),
		ck(0.40, 0.40), ck(0.52, 0.52), ck(0.62, 0.66), ck(0.72, 0.62),
	}),
	'S': def([]Checkpoint{
		ck(0.66, 0.22), ck(0.52, 0.14), ck(0.38, 0.18), ck(0.32, 0.30),
		ck(0.40, 0.40), ck(0.52, 0.46), ck(0.56, 0.56), ck(0.48, 0.66),
		ck(0.34, 0.66), ck(0.26, 0.58),
	}),
	'T': def(
		[]Checkpoint{
			ck(0.26, 0.18), ck(0.42, 0.14), ck(0.58, 0.14), ck(0.72, 0.18),
		},
		[]Checkpoint{
			ck(0.48, 0.16), ck(0.46, 0.34), ck(0.44, 0.52), ck(0.44, 0.66),
			ck(0.54, 0.62),
		},
	),
	'U': def([]Checkpoint{
		ck(0.26, 0.14), ck(0.26, 0.34), ck(0.28, 0.52), ck(0.36, 0.66),
		ck(0.50, 0.64), ck(0.58, 0.50), ck(0.62, 0.32), ck(0.64, 0.14),
		ck(0.64, 0.44), ck(0.66, 0.66),
	}),
	'V': def([]Checkpoint{
		ck(0.26, 0.14), ck(0.32, 0.32), ck(0.40, 0.52), ck(0.46, 0.66),
		ck(0.54, 0.48), ck(0.62, 0.28), ck(0.68, 0.14),
	}),
	'W': def([]Checkpoint{
		ck(0.16, 0.14), ck(0.22, 0.34), ck(0.28, 0.56), ck(0.32, 0.66),
		ck(0.38, 0.46), ck(0.44, 0.28), ck(0.50, 0.40), ck(0.56, 0.58),
		ck(0.60, 0.66), ck(0.66, 0.44), ck(0.72, 0.24), ck(0.76, 0.14),
	}),
	'X': def(
		[]Checkpoint{
			ck(0.28, 0.14), ck(0.38, 0.32), ck(0.48, 0.48), ck(0.58, 0.66),
		},
		[]Checkpoint{
			ck(0.64, 0.14), ck(0.54, 0.32), ck(0.42, 0.50), ck(0.32, 0.66),
		},
	),
	'Y': def([]Checkpoint{
		ck(0.26, 0.14), ck(0.32, 0.30), ck(0.40, 0.44), ck(0.48, 0.50),
		ck(0.56, 0.40), ck(0.62, 0.26), ck(0.66, 0.14), ck(0.60, 0.36),
		ck(0.54, 0.58), ck(0.48, 0.78), ck(0.40, 0.90),
	}),
	'Z': def([]Checkpoint{
		ck(0.26, 0.18), ck(0.42, 0.14), ck(0.58, 0.14), ck(0.70, 0.16),
		ck(0.56, 0.32), ck(0.42, 0.48), ck(0.30, 0.62), ck(0.44, 0.66),
		ck(0.60, 0.66), ck(0.72, 0.64),
	}),
}
