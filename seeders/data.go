package seeders

import "github.com/aarondl/null/v8"

type employeeSeed struct {
	ID         int64
	Name       string
	Department string
	StartDate  string
}

type performanceSeed struct {
	EmployeeID int64
	Score      null.Float64
}

// Демонстрационный набор: у Charlie (id=3) нет оценки, её заполнит среднее.
var sampleEmployees = []employeeSeed{
	{ID: 1, Name: "Alice", Department: "IT", StartDate: "2022-01-15"},
	{ID: 2, Name: "Bob", Department: "HR", StartDate: "2021-11-20"},
	{ID: 3, Name: "Charlie", Department: "IT", StartDate: "2023-03-10"},
	{ID: 4, Name: "David", Department: "Finance", StartDate: "2020-05-01"},
}

var samplePerformance = []performanceSeed{
	{EmployeeID: 1, Score: null.Float64From(4.5)},
	{EmployeeID: 2, Score: null.Float64From(3.8)},
	{EmployeeID: 4, Score: null.Float64From(4.1)},
}
