package layout

import "testing"

func TestNextTabStopAdvancesToMultiple(t *testing.T) {
	tabs := NewTabExpander(4)
	cases := []struct{ col, want int }{
		{0, 4}, {1, 4}, {3, 4}, {4, 8}, {5, 8},
	}
	for _, c := range cases {
		if got := tabs.NextTabStop(c.col); got != c.want {
			t.Errorf("NextTabStop(%d) = %d, want %d", c.col, got, c.want)
		}
	}
}

func TestNewTabExpanderDefaultsZeroWidth(t *testing.T) {
	tabs := NewTabExpander(0)
	if got := tabs.NextTabStop(0); got != 8 {
		t.Fatalf("NextTabStop(0) = %d, want 8 (default width)", got)
	}
}

func TestLayoutLineNoWrapIsSingleRow(t *testing.T) {
	m := NewMetrics(8, 0)
	rows := LayoutLine(m, "hello world")
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].NumRunes != 11 {
		t.Fatalf("NumRunes = %d, want 11", rows[0].NumRunes)
	}
	if rows[0].Width != 11 {
		t.Fatalf("Width = %d, want 11", rows[0].Width)
	}
}

func TestLayoutLineEmptyLineIsOneEmptyRow(t *testing.T) {
	m := NewMetrics(8, 40)
	rows := LayoutLine(m, "")
	if len(rows) != 1 || rows[0].NumRunes != 0 || rows[0].Width != 0 {
		t.Fatalf("rows = %+v, want one empty row", rows)
	}
}

func TestLayoutLineWrapsAtWidth(t *testing.T) {
	m := NewMetrics(8, 5)
	rows := LayoutLine(m, "aaaaabbbbb")
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2: %+v", len(rows), rows)
	}
	if rows[0].NumRunes != 5 || rows[1].NumRunes != 5 {
		t.Fatalf("rows = %+v, want 5/5 runes", rows)
	}
}

func TestLayoutLineNeverSplitsAGraphemeCluster(t *testing.T) {
	// "é" (e + combining acute) is one grapheme cluster, two runes.
	m := NewMetrics(8, 1)
	rows := LayoutLine(m, "é")
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1 (cluster kept whole): %+v", len(rows), rows)
	}
	if rows[0].NumRunes != 2 {
		t.Fatalf("NumRunes = %d, want 2", rows[0].NumRunes)
	}
}

func TestClusterWidthFoldsFullwidthForms(t *testing.T) {
	m := NewMetrics(8, 0)
	// U+FF21 FULLWIDTH LATIN CAPITAL LETTER A folds to narrow "A", width 1.
	if got := m.ClusterWidth("Ａ", 0); got != 1 {
		t.Fatalf("ClusterWidth(fullwidth A) = %d, want 1", got)
	}
}

func TestClusterWidthTabUsesColumn(t *testing.T) {
	m := NewMetrics(4, 0)
	if got := m.ClusterWidth("\t", 1); got != 3 {
		t.Fatalf("ClusterWidth(tab at col 1) = %d, want 3", got)
	}
	if got := m.ClusterWidth("\t", 0); got != 4 {
		t.Fatalf("ClusterWidth(tab at col 0) = %d, want 4", got)
	}
}
