package set

// Set 无序集合接口，作为区间集合实现的对照面
// 提供与intervalset相同的集合代数运算，便于差分测试逐一比对结果
type Set[T comparable] interface {
	// 基本操作
	Add(item T) bool      // 添加元素，元素已存在时返回false
	Contains(item T) bool // 检查元素是否存在
	Size() int            // 返回集合大小
	IsEmpty() bool        // 检查集合是否为空
	ToSlice() []T         // 将集合转换为切片，顺序不确定

	// 批量操作
	AddAll(items ...T) int // 批量添加元素，返回成功添加的元素数量

	// 集合运算
	Union(other Set[T]) Set[T]               // 并集
	Intersection(other Set[T]) Set[T]        // 交集
	Difference(other Set[T]) Set[T]          // 差集
	SymmetricDifference(other Set[T]) Set[T] // 对称差集
	IsSubset(other Set[T]) bool              // 判断是否为子集
	IsSuperset(other Set[T]) bool            // 判断是否为超集
	IsDisjoint(other Set[T]) bool            // 判断是否没有公共元素

	// 迭代
	ForEach(f func(T) bool) // 遍历集合，回调返回false时停止
}
