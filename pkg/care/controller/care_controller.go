package controller

import "github.com/labstack/echo/v4"

type CareController interface {
	ListTasks(c echo.Context) error
	ApplyAction(c echo.Context) error
	UndoLastAction(c echo.Context) error
	ListHistory(c echo.Context) error
}
