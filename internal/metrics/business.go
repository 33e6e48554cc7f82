package metrics

// IncrementBoardCreated increments board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementColumnCreated increments column creation counter
func (m *Metrics) IncrementColumnCreated() {
	m.safeExecute("IncrementColumnCreated", func() {
		m.ColumnCreatedTotal.Inc()
	})
}

// IncrementCardCreated increments card creation counter
func (m *Metrics) IncrementCardCreated() {
	m.safeExecute("IncrementCardCreated", func() {
		m.CardCreatedTotal.Inc()
	})
}

// SetBoardsTotal sets total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetColumnsTotal sets total columns gauge
func (m *Metrics) SetColumnsTotal(count int64) {
	m.safeExecute("SetColumnsTotal", func() {
		m.ColumnsTotal.Set(float64(count))
	})
}

// SetCardsTotal sets total cards gauge
func (m *Metrics) SetCardsTotal(count int64) {
	m.safeExecute("SetCardsTotal", func() {
		m.CardsTotal.Set(float64(count))
	})
}

// RecordReorder records a reorder of a board (columns) or a column (cards)
func (m *Metrics) RecordReorder(scope string, size int, err error) {
	m.safeExecute("RecordReorder", func() {
		m.ReorderTotal.WithLabelValues(scope, resultLabel(err)).Inc()
		if err == nil {
			m.ReorderSize.WithLabelValues(scope).Observe(float64(size))
		}
	})
}

// RecordCardMove records a cross-column move. mode is "reassign" or "move".
func (m *Metrics) RecordCardMove(mode string, err error) {
	m.safeExecute("RecordCardMove", func() {
		m.CardMovesTotal.WithLabelValues(mode, resultLabel(err)).Inc()
	})
}

// SetPositionConflicts sets the number of conflicting positions per scope kind
func (m *Metrics) SetPositionConflicts(scope string, count int) {
	m.safeExecute("SetPositionConflicts", func() {
		m.PositionConflicts.WithLabelValues(scope).Set(float64(count))
	})
}

// RecordRealtimeEvent records a published scope change event
func (m *Metrics) RecordRealtimeEvent(err error) {
	m.safeExecute("RecordRealtimeEvent", func() {
		m.RealtimeEventsTotal.WithLabelValues(resultLabel(err)).Inc()
	})
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

