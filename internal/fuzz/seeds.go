package fuzztests

import (
	"testing"
)

const maxFuzzInput = 1 << 16 // 64 KiB

var typeSeeds = []string{
	"f32", "f64", "i32", "i64", "byte",
	"f32[4]", "f32[3]", "byte[5]", "f32[2][3]", "i64[3][2][2]",
	"", "f32[", "f32[]", "f32[0]", "f32[-1]", "f32[3]x", "vec3", "f32[1048577]",
}

var lineSeeds = []string{
	"shaders/a.glsl]basic(color: f32[4], scale: f32)",
	"x]m(model: f32[4][4], ids: i32[3], flag: byte)",
	"x]n(a: byte, b: f64, c: byte[3], d: i64)",
	"no-bracket(a: f32)",
	"x]bad name(a: f32)",
	"x]f(a f32)",
	"x]f(a: f32,)",
	"x]f()",
	"x]f(a: f32",
	"x]f(a: f32)(b: i32)",
}

func addTypeSeeds(f *testing.F) {
	for _, s := range typeSeeds {
		f.Add(s)
	}
}

func addLineSeeds(f *testing.F) {
	for _, s := range lineSeeds {
		f.Add(s)
	}
}

func clamp(s string) string {
	if len(s) > maxFuzzInput {
		return s[:maxFuzzInput]
	}
	return s
}
