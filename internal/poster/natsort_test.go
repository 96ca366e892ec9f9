package poster

import (
	"reflect"
	"testing"
)

// TestSortNaturalNumbers проверяет, что цифровые фрагменты сравниваются
// как числа: img2 идёт раньше img10.
func TestSortNaturalNumbers(t *testing.T) {
	names := []string{"img2.png", "img10.png", "img1.png"}
	SortNatural(names)
	want := []string{"img1.png", "img2.png", "img10.png"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ожидался порядок %v, получен %v", want, names)
	}
}

// TestSortNaturalMixed проверяет порядок при смешанных именах с цифрами и без.
func TestSortNaturalMixed(t *testing.T) {
	names := []string{"b.jpg", "a2.jpg", "a10.jpg", "f10", "f2"}
	SortNatural(names)
	want := []string{"a2.jpg", "a10.jpg", "b.jpg", "f2", "f10"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ожидался порядок %v, получен %v", want, names)
	}
}

// TestSortNaturalCaseInsensitive проверяет, что регистр букв не влияет
// на порядок.
func TestSortNaturalCaseInsensitive(t *testing.T) {
	names := []string{"B1.jpg", "a2.jpg", "A1.jpg"}
	SortNatural(names)
	want := []string{"A1.jpg", "a2.jpg", "B1.jpg"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ожидался порядок %v, получен %v", want, names)
	}
}

// TestSortNaturalDeterministic проверяет, что повторная сортировка даёт
// тот же результат.
func TestSortNaturalDeterministic(t *testing.T) {
	names := []string{"c3", "c03", "c1", "b", "a9", "a10"}
	SortNatural(names)
	first := make([]string, len(names))
	copy(first, names)
	SortNatural(names)
	if !reflect.DeepEqual(names, first) {
		t.Errorf("повторная сортировка изменила порядок: %v и %v", first, names)
	}
}

// TestSortNaturalLeadingZeros проверяет, что ведущие нули не ломают
// числовое сравнение.
func TestSortNaturalLeadingZeros(t *testing.T) {
	names := []string{"img010.png", "img2.png", "img0001.png"}
	SortNatural(names)
	want := []string{"img0001.png", "img2.png", "img010.png"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ожидался порядок %v, получен %v", want, names)
	}
}
