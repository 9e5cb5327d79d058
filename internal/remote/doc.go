// Package remote implements the home remote control: commands that drive the
// home receivers, and a Remote that executes them with linear undo/redo.
//
// The Remote keeps two stacks. Executing a command pushes it onto the
// executed stack and clears the undone stack. Undo moves the most recent
// executed command to the undone stack; redo moves it back.
//
//	r := remote.New()
//	cmd, _ := remote.NewIncreaseTemperature(thermostat, 5)
//	r.SetCommand(cmd)
//	r.ExecuteCommand() // 5°C
//	r.UndoCommand()    // 0°C
//	r.RedoCommand()    // 5°C
//
// Rebinding with SetCommand only changes what the next ExecuteCommand runs;
// recorded history stays undoable.
package remote
