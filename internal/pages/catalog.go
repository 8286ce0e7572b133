package pages

// Category groups documented functions in the sidebar.
type Category struct {
	Slug    string
	Title   string
	TitleKo string
}

// Function is one documented library function.
type Function struct {
	Name      string
	Category  string
	Signature string
	Summary   string
	SummaryKo string
	Example   string
	Related   []string
}

// Categories in sidebar order.
var Categories = []Category{
	{Slug: "composition", Title: "Composition", TitleKo: "함수 합성"},
	{Slug: "function", Title: "Function", TitleKo: "함수"},
	{Slug: "array", Title: "Array", TitleKo: "배열"},
	{Slug: "control", Title: "Control Flow", TitleKo: "제어 흐름"},
	{Slug: "object", Title: "Object", TitleKo: "객체"},
}

// Functions is the documented API surface, in sidebar order within each
// category.
var Functions = []Function{
	{
		Name:      "pipe",
		Category:  "composition",
		Signature: "pipe(value, ...fns)",
		Summary:   "Passes a value through a list of functions from left to right and returns the final result.",
		SummaryKo: "값을 왼쪽에서 오른쪽으로 함수 목록에 차례로 통과시키고 최종 결과를 반환합니다.",
		Example: `pipe(
  [1, 2, 3, 4],
  filter((n) => n % 2 === 0),
  map((n) => n * 10),
); // [20, 40]`,
		Related: []string{"compose", "flow"},
	},
	{
		Name:      "compose",
		Category:  "composition",
		Signature: "compose(...fns)",
		Summary:   "Builds a function that applies the given functions from right to left.",
		SummaryKo: "주어진 함수들을 오른쪽에서 왼쪽으로 적용하는 함수를 만듭니다.",
		Example: `const shout = compose((s) => s + "!", (s) => s.toUpperCase());
shout("hello"); // "HELLO!"`,
		Related: []string{"pipe", "flow"},
	},
	{
		Name:      "flow",
		Category:  "composition",
		Signature: "flow(...fns)",
		Summary:   "Builds a function that applies the given functions from left to right. It is pipe without the initial value.",
		SummaryKo: "주어진 함수들을 왼쪽에서 오른쪽으로 적용하는 함수를 만듭니다. 초기값이 없는 pipe입니다.",
		Example: `const slugify = flow(trim, toLower, (s) => s.replaceAll(" ", "-"));
slugify("  Hello World "); // "hello-world"`,
		Related: []string{"pipe", "compose"},
	},
	{
		Name:      "curry",
		Category:  "function",
		Signature: "curry(fn)",
		Summary:   "Returns a function that collects arguments until fn's arity is satisfied, then calls fn.",
		SummaryKo: "fn의 인자 개수가 채워질 때까지 인자를 모은 뒤 fn을 호출하는 함수를 반환합니다.",
		Example: `const add = curry((a, b, c) => a + b + c);
add(1)(2)(3); // 6
add(1, 2)(3); // 6`,
		Related: []string{"partial"},
	},
	{
		Name:      "partial",
		Category:  "function",
		Signature: "partial(fn, ...args)",
		Summary:   "Fixes the leading arguments of fn and returns a function that takes the rest.",
		SummaryKo: "fn의 앞쪽 인자를 고정하고 나머지 인자를 받는 함수를 반환합니다.",
		Example: `const greet = (greeting, name) => greeting + ", " + name;
partial(greet, "Hi")("Jun"); // "Hi, Jun"`,
		Related: []string{"curry"},
	},
	{
		Name:      "memoize",
		Category:  "function",
		Signature: "memoize(fn, key?)",
		Summary:   "Caches fn's results by argument key so repeated calls return the stored value.",
		SummaryKo: "인자 키별로 fn의 결과를 캐시하여 반복 호출 시 저장된 값을 반환합니다.",
		Example: `const slowSquare = (n) => n * n;
const square = memoize(slowSquare);
square(9); // computed
square(9); // cached`,
		Related: []string{"identity"},
	},
	{
		Name:      "identity",
		Category:  "function",
		Signature: "identity(value)",
		Summary:   "Returns its argument unchanged.",
		SummaryKo: "인자를 그대로 반환합니다.",
		Example:   `[0, 1, "", "a"].filter(identity); // [1, "a"]`,
		Related:   []string{"memoize"},
	},
	{
		Name:      "map",
		Category:  "array",
		Signature: "map(fn)(list)",
		Summary:   "Returns a new list with fn applied to every element.",
		SummaryKo: "모든 요소에 fn을 적용한 새 목록을 반환합니다.",
		Example:   `map((n) => n + 1)([1, 2, 3]); // [2, 3, 4]`,
		Related:   []string{"filter", "reduce"},
	},
	{
		Name:      "filter",
		Category:  "array",
		Signature: "filter(predicate)(list)",
		Summary:   "Returns the elements for which predicate returns true.",
		SummaryKo: "predicate가 true를 반환하는 요소만 남긴 목록을 반환합니다.",
		Example:   `filter((n) => n > 1)([1, 2, 3]); // [2, 3]`,
		Related:   []string{"map", "reduce"},
	},
	{
		Name:      "reduce",
		Category:  "array",
		Signature: "reduce(fn, initial)(list)",
		Summary:   "Folds the list into a single value by applying fn to an accumulator and each element.",
		SummaryKo: "누적값과 각 요소에 fn을 적용하여 목록을 하나의 값으로 접습니다.",
		Example:   `reduce((sum, n) => sum + n, 0)([1, 2, 3]); // 6`,
		Related:   []string{"map", "filter"},
	},
	{
		Name:      "chunk",
		Category:  "array",
		Signature: "chunk(size)(list)",
		Summary:   "Splits the list into groups of size elements. The last group may be shorter.",
		SummaryKo: "목록을 size 개씩 묶음으로 나눕니다. 마지막 묶음은 더 짧을 수 있습니다.",
		Example:   `chunk(2)([1, 2, 3, 4, 5]); // [[1, 2], [3, 4], [5]]`,
		Related:   []string{"flatten"},
	},
	{
		Name:      "flatten",
		Category:  "array",
		Signature: "flatten(list)",
		Summary:   "Flattens one level of nesting.",
		SummaryKo: "한 단계 중첩을 평탄화합니다.",
		Example:   `flatten([[1, 2], [3], []]); // [1, 2, 3]`,
		Related:   []string{"chunk", "uniq"},
	},
	{
		Name:      "uniq",
		Category:  "array",
		Signature: "uniq(list)",
		Summary:   "Removes duplicate elements, keeping the first occurrence.",
		SummaryKo: "중복 요소를 제거하고 처음 나온 요소를 남깁니다.",
		Example:   `uniq([1, 2, 1, 3, 2]); // [1, 2, 3]`,
		Related:   []string{"flatten"},
	},
	{
		Name:      "when",
		Category:  "control",
		Signature: "when(predicate, fn)(value)",
		Summary:   "Applies fn to value when predicate holds, otherwise returns value unchanged.",
		SummaryKo: "predicate가 참이면 value에 fn을 적용하고, 아니면 value를 그대로 반환합니다.",
		Example: `const clampNegative = when((n) => n < 0, () => 0);
clampNegative(-5); // 0
clampNegative(3);  // 3`,
		Related: []string{"unless", "tap"},
	},
	{
		Name:      "unless",
		Category:  "control",
		Signature: "unless(predicate, fn)(value)",
		Summary:   "Applies fn to value when predicate does not hold.",
		SummaryKo: "predicate가 거짓일 때 value에 fn을 적용합니다.",
		Example: `const ensureArray = unless(Array.isArray, (x) => [x]);
ensureArray(1);   // [1]
ensureArray([1]); // [1]`,
		Related: []string{"when"},
	},
	{
		Name:      "tap",
		Category:  "control",
		Signature: "tap(fn)(value)",
		Summary:   "Calls fn with value for its side effect and returns value.",
		SummaryKo: "부수 효과를 위해 value로 fn을 호출하고 value를 반환합니다.",
		Example:   `pipe(42, tap(console.log), (n) => n + 1); // logs 42, returns 43`,
		Related:   []string{"when", "tryCatch"},
	},
	{
		Name:      "tryCatch",
		Category:  "control",
		Signature: "tryCatch(fn, onError)(value)",
		Summary:   "Calls fn with value and returns onError's result if fn throws.",
		SummaryKo: "value로 fn을 호출하고, fn이 예외를 던지면 onError의 결과를 반환합니다.",
		Example: `const parse = tryCatch(JSON.parse, () => null);
parse("{\"a\":1}"); // { a: 1 }
parse("oops");      // null`,
		Related: []string{"tap"},
	},
	{
		Name:      "pick",
		Category:  "object",
		Signature: "pick(keys)(object)",
		Summary:   "Returns a copy of object with only the listed keys.",
		SummaryKo: "나열된 키만 남긴 객체의 복사본을 반환합니다.",
		Example:   `pick(["a", "c"])({ a: 1, b: 2, c: 3 }); // { a: 1, c: 3 }`,
		Related:   []string{"omit"},
	},
	{
		Name:      "omit",
		Category:  "object",
		Signature: "omit(keys)(object)",
		Summary:   "Returns a copy of object without the listed keys.",
		SummaryKo: "나열된 키를 제외한 객체의 복사본을 반환합니다.",
		Example:   `omit(["b"])({ a: 1, b: 2, c: 3 }); // { a: 1, c: 3 }`,
		Related:   []string{"pick"},
	},
}

// Path returns the canonical (English) route of a function page.
func (f Function) Path() string { return "/" + f.Category + "/" + f.Name }

// find returns the function with the given name.
func find(name string) (Function, bool) {
	for _, f := range Functions {
		if f.Name == name {
			return f, true
		}
	}
	return Function{}, false
}

func category(slug string) Category {
	for _, c := range Categories {
		if c.Slug == slug {
			return c
		}
	}
	return Category{Slug: slug, Title: slug, TitleKo: slug}
}
