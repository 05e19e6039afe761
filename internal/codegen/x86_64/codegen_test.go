package x86_64

import (
	"strings"
	"testing"

	"github.com/ccdwarf/ccdwarf/internal/block"
	"github.com/ccdwarf/ccdwarf/internal/lexer"
)

func compile(t *testing.T, src string) string {
	t.Helper()
	toks := lexer.Clean(lexer.Scan(src))
	root := block.Parse(toks)
	return New().Generate(root)
}

func TestSimpleReturnEmitsFrameUnwind(t *testing.T) {
	asm := compile(t, `int f() { int a; a = 2; return a; }`)
	for _, want := range []string{"addq $-16, %rsp", "movq $2, %rax", "movl %eax,", "addq $16, %rsp", "ret"} {
		if !strings.Contains(asm, want) {
			t.Errorf("expected assembly to contain %q, got:\n%s", want, asm)
		}
	}
}

func TestWhileLoopEmitsLabelPair(t *testing.T) {
	asm := compile(t, `int f() { int x; x = 1; while (x) { x = x + 1; } return x; }`)
	if strings.Count(asm, ":") < 2 {
		t.Errorf("expected at least a pair of labels in while codegen, got:\n%s", asm)
	}
	if !strings.Contains(asm, "cmp $0, %eax") || !strings.Contains(asm, "je ") {
		t.Errorf("expected a zero-test and conditional jump, got:\n%s", asm)
	}
}

func TestPointerAddressOfGlobal(t *testing.T) {
	asm := compile(t, `int buf; int f() { int *p; p = &buf; return 0; }`)
	if !strings.Contains(asm, "leaq buf(%rip), %rax") {
		t.Errorf("expected leaq buf(%%rip), got:\n%s", asm)
	}
}

func TestStringLiteralInternedIntoRodata(t *testing.T) {
	asm := compile(t, `int f() { puts("hello"); return 0; }`)
	if !strings.Contains(asm, ".section .rodata") {
		t.Errorf("expected a .rodata section, got:\n%s", asm)
	}
	if !strings.Contains(asm, `.string "hello"`) {
		t.Errorf("expected an interned string literal, got:\n%s", asm)
	}
	if !strings.Contains(asm, "leaq .LC0(%rip), %rdi") {
		t.Errorf("expected the string address loaded into the first arg register, got:\n%s", asm)
	}
	if !strings.Contains(asm, "call puts") {
		t.Errorf("expected a call to puts, got:\n%s", asm)
	}
}

func TestGlobalVarDeclEmitsBSS(t *testing.T) {
	asm := compile(t, `int counter;`)
	for _, want := range []string{".bss", ".align 16", ".zero 4", "counter:"} {
		if !strings.Contains(asm, want) {
			t.Errorf("expected global decl assembly to contain %q, got:\n%s", want, asm)
		}
	}
}

func TestComparisonSynthesizesBooleanResult(t *testing.T) {
	asm := compile(t, `int f() { int a; int b; int c; c = a == b; return c; }`)
	if !strings.Contains(asm, "je") && !strings.Contains(asm, "jne") {
		t.Errorf("expected a conditional jump implementing the comparison, got:\n%s", asm)
	}
	if !strings.Contains(asm, "movq $0,") || !strings.Contains(asm, "movq $1,") {
		t.Errorf("expected the 0/1 boolean synthesis, got:\n%s", asm)
	}
}

func TestFunctionCallWithArgumentsUsesArgRegisters(t *testing.T) {
	asm := compile(t, `int add(int a, int b) { return a + b; } int f() { int r; r = add(1, 2); return r; }`)
	if !strings.Contains(asm, "call add") {
		t.Errorf("expected a call to add, got:\n%s", asm)
	}
	if !strings.Contains(asm, "movq $1, %rdi") || !strings.Contains(asm, "movq $2, %rsi") {
		t.Errorf("expected arguments loaded into %%rdi/%%rsi, got:\n%s", asm)
	}
}

func TestIfElseEmitsElseJumpAndZeroTest(t *testing.T) {
	asm := compile(t, `int f() { int x; x = 1; if (x) { x = 2; } else { x = 3; } return x; }`)
	if strings.Count(asm, "jmp") < 1 || strings.Count(asm, "je ") < 1 {
		t.Errorf("expected an else-branch jump and a zero-test, got:\n%s", asm)
	}
}

func TestForLoopContinueJumpsToPostClause(t *testing.T) {
	asm := compile(t, `int f() { int i; int sum; sum = 0; for (i = 0; i < 10; i = i + 1) { if (i == 5) { continue; } sum = sum + i; } return sum; }`)
	if !strings.Contains(asm, "jmp") {
		t.Errorf("expected the loop back-edge jump, got:\n%s", asm)
	}
	if strings.Count(asm, ":") < 3 {
		t.Errorf("expected at least the enter/post/leave labels, got:\n%s", asm)
	}
	// genFor allocates enter=.L0, post=.L1, leave=.L2; only continue jumps to .L1.
	if !strings.Contains(asm, "\tjmp .L1\n") || !strings.Contains(asm, ".L1:\n") {
		t.Errorf("expected continue to jump to the post-clause label .L1, got:\n%s", asm)
	}
}

func TestBreakJumpsOutOfWhile(t *testing.T) {
	asm := compile(t, `int f() { int x; x = 0; while (1) { x = x + 1; if (x == 10) { break; } } return x; }`)
	if !strings.Contains(asm, "jmp") {
		t.Errorf("expected break to compile to a jmp, got:\n%s", asm)
	}
}

func TestPointerStoreUsesPointeeWidth(t *testing.T) {
	asm := compile(t, `int f() { int v; int *p; p = &v; *p = 7; return 0; }`)
	if !strings.Contains(asm, "movl %r10d, (%rax)") {
		t.Errorf("expected a 4-byte pointee store through *p, got:\n%s", asm)
	}
}

func TestIncrementScalesByPointeeSizeForIntPointer(t *testing.T) {
	asm := compile(t, `int f() { int v; int *p; p = &v; p++; return 0; }`)
	if !strings.Contains(asm, "addq $4, %rax") {
		t.Errorf("expected int* increment to scale by 4, got:\n%s", asm)
	}
}

func TestDoWhileLoopsWhileConditionHolds(t *testing.T) {
	asm := compile(t, `int f() { int i; i = 0; do { i = i + 1; } while (i < 5); return i; }`)
	if !strings.Contains(asm, "jne") {
		t.Errorf("expected the do-while backward branch to use jne, got:\n%s", asm)
	}
}
