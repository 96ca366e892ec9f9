package poster

import (
	"sort"
	"strings"
)

// SortNatural сортирует имена файлов в естественном порядке: цифровые
// фрагменты сравниваются как числа, остальные — как строки без учёта
// регистра. Так "img2.jpg" оказывается раньше "img10.jpg", что сохраняет
// задуманный автором порядок пронумерованных файлов.
func SortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})
}

// naturalLess сравнивает два имени по их фрагментам. Разбиение всегда
// начинается с нецифрового фрагмента (возможно пустого), поэтому на
// одинаковых позициях оказываются фрагменты одного вида.
func naturalLess(a, b string) bool {
	ra, rb := splitRuns(a), splitRuns(b)
	for i := 0; i < len(ra) && i < len(rb); i++ {
		var cmp int
		if i%2 == 1 {
			cmp = compareNumeric(ra[i], rb[i])
		} else {
			cmp = strings.Compare(strings.ToLower(ra[i]), strings.ToLower(rb[i]))
		}
		if cmp != 0 {
			return cmp < 0
		}
	}
	return len(ra) < len(rb)
}

// splitRuns делит имя на чередующиеся нецифровые и цифровые фрагменты.
// Первый фрагмент всегда нецифровой, пустой, если имя начинается с цифры.
func splitRuns(s string) []string {
	var runs []string
	start := 0
	digits := false
	for i, r := range s {
		isDigit := r >= '0' && r <= '9'
		if i == 0 {
			if isDigit {
				// Пустой нецифровой фрагмент выравнивает позиции.
				runs = append(runs, "")
			}
			digits = isDigit
			continue
		}
		if isDigit != digits {
			runs = append(runs, s[start:i])
			start = i
			digits = isDigit
		}
	}
	if len(s) > 0 {
		runs = append(runs, s[start:])
	}
	return runs
}

// compareNumeric сравнивает два цифровых фрагмента как числа произвольной
// длины: ведущие нули отбрасываются, затем сравниваются длина и текст.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
