package qb

import (
	"reflect"
	"testing"
)

func build(t *testing.T, e Expr) (string, []any) {
	t.Helper()
	out, args, err := e.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return out, args
}

func TestEq(t *testing.T) {
	out, args := build(t, Eq("a", 1))
	if out != "a = ?" {
		t.Errorf("fragment = %q", out)
	}
	if !reflect.DeepEqual(args, []any{1}) {
		t.Errorf("args = %v", args)
	}
}

func TestCmp(t *testing.T) {
	out, args := build(t, Cmp("age", ">=", 18))
	if out != "age >= ?" {
		t.Errorf("fragment = %q", out)
	}
	if !reflect.DeepEqual(args, []any{18}) {
		t.Errorf("args = %v", args)
	}
}

func TestRaw(t *testing.T) {
	out, args := build(t, Raw("deleted_at IS NULL"))
	if out != "deleted_at IS NULL" {
		t.Errorf("fragment = %q", out)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestNullChecks(t *testing.T) {
	if out, _ := build(t, Null("a")); out != "a IS NULL" {
		t.Errorf("fragment = %q", out)
	}
	if out, _ := build(t, NotNull("a")); out != "a IS NOT NULL" {
		t.Errorf("fragment = %q", out)
	}
}

func TestInFlattensSlice(t *testing.T) {
	out, args := build(t, In("id", []int{1, 2, 3}))
	if out != "id IN (?, ?, ?)" {
		t.Errorf("fragment = %q", out)
	}
	if !reflect.DeepEqual(args, []any{1, 2, 3}) {
		t.Errorf("args = %v", args)
	}
}

func TestInVariadic(t *testing.T) {
	out, args := build(t, In("id", 1, 2))
	if out != "id IN (?, ?)" {
		t.Errorf("fragment = %q", out)
	}
	if len(args) != 2 {
		t.Errorf("args = %v", args)
	}
}

func TestInNilElement(t *testing.T) {
	out, args := build(t, In("x", nil))
	if out != "x IN (?)" {
		t.Errorf("fragment = %q", out)
	}
	if len(args) != 1 || args[0] != nil {
		t.Errorf("args = %v, want [nil]", args)
	}
}

func TestInEmpty(t *testing.T) {
	out, args := build(t, In("id"))
	if out != "id IN (NULL)" {
		t.Errorf("fragment = %q", out)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestLikeVariants(t *testing.T) {
	_, args := build(t, Like("name", "an"))
	if !reflect.DeepEqual(args, []any{"%an%"}) {
		t.Errorf("Like args = %v", args)
	}

	_, args = build(t, RLike("name", "an"))
	if !reflect.DeepEqual(args, []any{"an%"}) {
		t.Errorf("RLike args = %v", args)
	}

	_, args = build(t, LLike("name", "an"))
	if !reflect.DeepEqual(args, []any{"%an"}) {
		t.Errorf("LLike args = %v", args)
	}
}

func TestBuildJoinsWithOperator(t *testing.T) {
	out, args, err := Build("AND", Eq("a", 1), Raw("b = 2"), Gt("c", 3))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if out != "a = ? AND b = 2 AND c > ?" {
		t.Errorf("cond = %q", out)
	}
	if !reflect.DeepEqual(args, []any{1, 3}) {
		t.Errorf("args = %v", args)
	}
}

func TestBuildParenthesizesGroups(t *testing.T) {
	out, args, err := Build("AND", Eq("a", 1), Or(Eq("b", 2), Eq("c", 3)))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if out != "a = ? AND (b = ? OR c = ?)" {
		t.Errorf("cond = %q", out)
	}
	if !reflect.DeepEqual(args, []any{1, 2, 3}) {
		t.Errorf("args = %v", args)
	}
}

func TestZeroExprErrors(t *testing.T) {
	if _, _, err := (WhereExpr{}).Build(); err == nil {
		t.Error("expected error from zero-value expression")
	}
	if _, _, err := Build("AND", Eq("a", 1), WhereExpr{}); err == nil {
		t.Error("expected zero-value expression to fail the whole build")
	}
}

func TestBuildEmpty(t *testing.T) {
	out, args, err := Build("AND")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if out != "" || len(args) != 0 {
		t.Errorf("got %q / %v, want empty", out, args)
	}
}
