package set

// HashSet 基于Go map的无序集合实现
// 所有操作的期望时间复杂度为O(1)，不保留元素顺序
type HashSet[T comparable] struct {
	items map[T]struct{}
}

// New 创建一个新的HashSet并添加给定元素
func New[T comparable](items ...T) Set[T] {
	s := &HashSet[T]{
		items: make(map[T]struct{}, len(items)),
	}
	s.AddAll(items...)
	return s
}

// Add 添加元素到集合中
func (s *HashSet[T]) Add(item T) bool {
	if _, exists := s.items[item]; exists {
		return false
	}
	s.items[item] = struct{}{}
	return true
}

// AddAll 批量添加元素，返回成功添加的元素数量
func (s *HashSet[T]) AddAll(items ...T) int {
	added := 0
	for _, item := range items {
		if s.Add(item) {
			added++
		}
	}
	return added
}

// Contains 检查元素是否在集合中
func (s *HashSet[T]) Contains(item T) bool {
	_, exists := s.items[item]
	return exists
}

// Size 返回集合中的元素数量
func (s *HashSet[T]) Size() int {
	return len(s.items)
}

// IsEmpty 检查集合是否为空
func (s *HashSet[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// ToSlice 将集合转换为切片，元素顺序不确定
func (s *HashSet[T]) ToSlice() []T {
	out := make([]T, 0, len(s.items))
	for item := range s.items {
		out = append(out, item)
	}
	return out
}

// Union 返回与另一个集合的并集
func (s *HashSet[T]) Union(other Set[T]) Set[T] {
	result := New[T](s.ToSlice()...)
	other.ForEach(func(item T) bool {
		result.Add(item)
		return true
	})
	return result
}

// Intersection 返回与另一个集合的交集
func (s *HashSet[T]) Intersection(other Set[T]) Set[T] {
	result := New[T]()
	for item := range s.items {
		if other.Contains(item) {
			result.Add(item)
		}
	}
	return result
}

// Difference 返回与另一个集合的差集(s − other)
func (s *HashSet[T]) Difference(other Set[T]) Set[T] {
	result := New[T]()
	for item := range s.items {
		if !other.Contains(item) {
			result.Add(item)
		}
	}
	return result
}

// SymmetricDifference 返回与另一个集合的对称差集
func (s *HashSet[T]) SymmetricDifference(other Set[T]) Set[T] {
	result := s.Difference(other)
	other.ForEach(func(item T) bool {
		if !s.Contains(item) {
			result.Add(item)
		}
		return true
	})
	return result
}

// IsSubset 检查当前集合是否是另一个集合的子集
func (s *HashSet[T]) IsSubset(other Set[T]) bool {
	if len(s.items) > other.Size() {
		return false
	}
	for item := range s.items {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// IsSuperset 检查当前集合是否是另一个集合的超集
func (s *HashSet[T]) IsSuperset(other Set[T]) bool {
	return other.IsSubset(s)
}

// IsDisjoint 检查两个集合是否没有公共元素
func (s *HashSet[T]) IsDisjoint(other Set[T]) bool {
	disjoint := true
	smaller, larger := Set[T](s), other
	if other.Size() < s.Size() {
		smaller, larger = other, Set[T](s)
	}
	smaller.ForEach(func(item T) bool {
		if larger.Contains(item) {
			disjoint = false
			return false
		}
		return true
	})
	return disjoint
}

// ForEach 遍历集合中的所有元素，顺序不确定
func (s *HashSet[T]) ForEach(f func(T) bool) {
	for item := range s.items {
		if !f(item) {
			break
		}
	}
}
