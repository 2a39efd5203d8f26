package multiindex

type employee struct {
	id   int
	name string
	age  int
	city string
}

var (
	data1 = &employee{id: 1, name: "Semen Sidorov", age: 34, city: "Tver"}
	data2 = &employee{id: 2, name: "Ivan Petrov", age: 27, city: "Omsk"}
	data3 = &employee{id: 3, name: "Anna Ivanova", age: 41, city: "Tver"}
)

func employeeID(e *employee) int {
	return e.id
}

func employeeName(e *employee) string {
	return e.name
}
