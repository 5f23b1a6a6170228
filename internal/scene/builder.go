package scene

// Builder collects elements per layer and flattens them in z-order.
// Insertion order is kept within a layer.
type Builder struct {
	width, height float64
	buckets       [layerCount][]Element
}

// NewBuilder creates a builder for a canvas of the given size
func NewBuilder(width, height float64) *Builder {
	return &Builder{width: width, height: height}
}

// Add appends elements to their layers. Elements with an unknown layer are
// dropped.
func (b *Builder) Add(els ...Element) {
	for _, el := range els {
		if el.Layer < 0 || el.Layer >= layerCount {
			continue
		}
		b.buckets[el.Layer] = append(b.buckets[el.Layer], el)
	}
}

// Len returns the number of elements collected so far.
func (b *Builder) Len() int {
	n := 0
	for _, bucket := range b.buckets {
		n += len(bucket)
	}
	return n
}

// Scene flattens the collected elements. The builder can keep being used;
// the returned scene does not share storage with it.
func (b *Builder) Scene() Scene {
	s := Scene{
		Width:    b.width,
		Height:   b.height,
		Elements: make([]Element, 0, b.Len()),
	}
	for _, bucket := range b.buckets {
		s.Elements = append(s.Elements, bucket...)
	}
	return s
}
