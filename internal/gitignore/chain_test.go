package gitignore

import "testing"

func TestChainInheritanceWithNegation(t *testing.T) {
	root, err := Parse([]byte("target/\n"), "")
	if err != nil {
		t.Fatal(err)
	}
	sub, err := Parse([]byte("!keep.log\n"), "target")
	if err != nil {
		t.Fatal(err)
	}

	chain := Chain{}.Append(root).Append(sub)

	if !chain.IsIgnored("target", true) {
		t.Error("expected target/ to be ignored")
	}
	if !chain.IsIgnored("target/other.log", false) {
		t.Error("expected target/other.log to be ignored")
	}
	if chain.IsIgnored("target/keep.log", false) {
		t.Error("expected target/keep.log to be un-ignored by negation")
	}
}

func TestDoubleStarMatchesAnyDepth(t *testing.T) {
	set, err := Parse([]byte("**/build\n"), "")
	if err != nil {
		t.Fatal(err)
	}
	chain := Chain{}.Append(set)

	if !chain.IsIgnored("build", true) {
		t.Error("expected top-level build to match **/build")
	}
	if !chain.IsIgnored("a/b/build", true) {
		t.Error("expected nested build to match **/build")
	}
}

func TestUnanchoredMatchesAnyDepth(t *testing.T) {
	set, err := Parse([]byte("*.log\n"), "")
	if err != nil {
		t.Fatal(err)
	}
	chain := Chain{}.Append(set)

	if !chain.IsIgnored("a/b/debug.log", false) {
		t.Error("expected unanchored *.log to match at any depth")
	}
}

func TestDirOnlyDoesNotMatchFile(t *testing.T) {
	set, err := Parse([]byte("cache/\n"), "")
	if err != nil {
		t.Fatal(err)
	}
	chain := Chain{}.Append(set)

	if chain.IsIgnored("cache", false) {
		t.Error("dir-only rule must not match a file named cache")
	}
	if !chain.IsIgnored("cache", true) {
		t.Error("dir-only rule must match a directory named cache")
	}
}
