// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "testing"

func TestHashString(t *testing.T) {
	a := ID("button")
	if a.ID == 0 {
		t.Fatal("zero hash")
	}
	if a != ID("button") {
		t.Error("hash is not stable")
	}
	if ID("button").ID == ID("buttons").ID {
		t.Error("distinct labels collide")
	}
	if a.StringID != "button" || a.BaseID != a.ID {
		t.Errorf("got %+v", a)
	}
	i0, i1 := IDI("item", 0), IDI("item", 1)
	if i0.ID == i1.ID {
		t.Error("offsets collide")
	}
	if i0.BaseID != i1.BaseID || i0.BaseID != ID("item").ID {
		t.Errorf("base ids differ: %x %x", i0.BaseID, i1.BaseID)
	}
	if i1.Offset != 1 {
		t.Errorf("got offset %d; want 1", i1.Offset)
	}
}

func TestHashNumber(t *testing.T) {
	seen := make(map[uint32]bool)
	for seed := uint32(0); seed < 4; seed++ {
		for off := uint32(0); off < 64; off++ {
			id := HashNumber(off, seed).ID
			if id == 0 || seen[id] {
				t.Fatalf("HashNumber(%d, %d) = %x collides", off, seed, id)
			}
			seen[id] = true
		}
	}
	// Pairs with equal sums.
	if HashNumber(1, 0).ID == HashNumber(0, 1).ID {
		t.Error("HashNumber(1, 0) and HashNumber(0, 1) collide")
	}
}

func TestIDLocal(t *testing.T) {
	c, _ := newTestContext(t, 800, 600)
	var first, second ElementID
	c.BeginLayout()
	c.Element(Declaration{ID: ID("a")}, func() {
		first = c.IDLocal("label")
	})
	c.Element(Declaration{ID: ID("b")}, func() {
		second = c.IDLocal("label")
	})
	c.EndLayout()
	if first.ID == second.ID {
		t.Error("local ids of different parents collide")
	}
}

func TestMeasureWords(t *testing.T) {
	c, _ := newTestContext(t, 800, 600)
	c.BeginLayout()
	config := &TextConfig{}
	item := c.measureTextCached("hello world\nfoo", config)
	c.EndLayout()
	if got, want := item.unwrappedDimensions, (Dimensions{Width: 105, Height: 20}); got != want {
		t.Errorf("got dimensions %v; want %v", got, want)
	}
	if item.minWidth != 50 {
		t.Errorf("got min width %v; want 50", item.minWidth)
	}
	if !item.containsNewlines {
		t.Error("newline not detected")
	}
	var words []string
	for w := item.words; w != -1; w = c.words[w].next {
		word := c.words[w]
		words = append(words, "hello world\nfoo"[word.startOffset:word.startOffset+word.length])
	}
	want := []string{"hello ", "world", "", "foo"}
	if len(words) != len(want) {
		t.Fatalf("got words %q; want %q", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("word %d: got %q; want %q", i, words[i], want[i])
		}
	}
}

func TestMeasureCacheReuse(t *testing.T) {
	calls := 0
	c, _ := newTestContext(t, 800, 600)
	c.SetMeasureTextFunction(func(text string, config *TextConfig, userData any) Dimensions {
		calls++
		return monoMeasure(text, config, userData)
	}, nil)
	for i := 0; i < 3; i++ {
		c.BeginLayout()
		c.Text("cached text", TextConfig{})
		c.EndLayout()
	}
	// The space and both words are measured once; wrapping measures the
	// space width every frame.
	first := calls
	c.BeginLayout()
	c.Text("cached text", TextConfig{})
	c.EndLayout()
	if calls-first > 1 {
		t.Errorf("cached text measured %d more times", calls-first)
	}
}
