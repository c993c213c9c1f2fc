package gen

// Builder lets Compose assemble a value from any number of draws that share
// one evolving Context. A Builder is only valid inside the function passed
// to Compose.
type Builder struct {
	ctx    Context
	closed bool
}

// Compose builds values field by field:
//
//	point := gen.Compose(func(b *gen.Builder) Point {
//	    return Point{
//	        X: gen.Draw(b, gen.InRange(-10, 10)),
//	        Y: gen.Draw(b, gen.InRange(-10, 10)),
//	    }
//	})
//
// Draws happen in call order, so build must not depend on anything but the
// drawn values to stay reproducible.
func Compose[T any](build func(b *Builder) T) Generator[T] {
	return New(func(ctx Context) (T, Context) {
		b := &Builder{ctx: ctx}
		defer func() { b.closed = true }()
		v := build(b)
		return v, b.ctx
	})
}

// Draw pulls one value from g using the builder's Context.
func Draw[T any](b *Builder, g Generator[T]) T {
	if b.closed {
		precondition("Builder used after Compose returned")
	}
	var v T
	v, b.ctx = g.Generate(b.ctx)
	return v
}

// Size reports the size hint of the enclosing draw.
func (b *Builder) Size() int {
	return b.ctx.Size
}

// Arbitrary is implemented by types that provide their own default generator.
// The method is called on the zero value and must not depend on it.
type Arbitrary[T any] interface {
	Arbitrary() Generator[T]
}

// Of returns T's default generator.
func Of[T Arbitrary[T]]() Generator[T] {
	var zero T
	return zero.Arbitrary()
}

// DrawArbitrary pulls a value from T's default generator.
func DrawArbitrary[T Arbitrary[T]](b *Builder) T {
	return Draw(b, Of[T]())
}
