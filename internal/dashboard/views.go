package dashboard

import (
	"context"
	"fmt"

	"tb3/pkg/domain"
)

type dashboardData struct {
	Health   *domain.Health
	Demo     *domain.DemoStatus
	Edges    []domain.Edge
	Tasks    []domain.Task
	Pending  []domain.Proposal
	Regions  map[string]int
	NumTasks int
}

func (s *Server) dashboard(ctx context.Context) (*dashboardData, error) {
	health, err := s.client.Health(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get health: %w", err)
	}
	demo, err := s.client.DemoStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get demo status: %w", err)
	}
	edges, err := s.client.Edges(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list edges: %w", err)
	}
	tasks, err := s.client.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}
	proposals, err := s.client.Proposals(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list proposals: %w", err)
	}

	d := &dashboardData{
		Health:   health,
		Demo:     demo,
		Edges:    edges,
		Tasks:    newestFirst(tasks, recentLimit),
		Regions:  map[string]int{},
		NumTasks: len(tasks),
	}
	for _, e := range edges {
		d.Regions[e.Region]++
	}
	for _, p := range proposals {
		if p.Status == domain.ProposalStatusPending {
			d.Pending = append(d.Pending, p)
		}
	}

	return d, nil
}

type edgeData struct {
	Edge *domain.Edge
	// TaskID is the task whose logs are listed, empty for the edge's recent logs.
	TaskID    string
	Logs      []domain.LogSummary
	Tasks     []domain.Task
	Proposals []domain.Proposal
}

func (s *Server) edgeDetail(ctx context.Context, addr, taskID string) (*edgeData, error) {
	edge, err := s.client.Edge(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("could not get edge: %w", err)
	}
	tasks, err := s.client.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}
	proposals, err := s.client.Proposals(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list proposals: %w", err)
	}

	d := &edgeData{Edge: edge, TaskID: taskID}
	if taskID != "" {
		// stage order is the story of one task, keep it
		d.Logs, err = s.client.LogsByTask(ctx, taskID)
		if err != nil {
			return nil, fmt.Errorf("could not list task logs: %w", err)
		}
	} else {
		logs, err := s.client.LogsAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not list logs: %w", err)
		}
		for _, l := range logs {
			if l.EdgeAddr == addr {
				d.Logs = append(d.Logs, l)
			}
		}
		d.Logs = newestFirst(d.Logs, recentLimit)
	}
	for _, t := range tasks {
		if t.ChosenEdgeAddr == addr {
			d.Tasks = append(d.Tasks, t)
		}
	}
	d.Tasks = newestFirst(d.Tasks, recentLimit)
	for _, p := range proposals {
		if p.EdgeAddr == addr {
			d.Proposals = append(d.Proposals, p)
		}
	}

	return d, nil
}

type auditData struct {
	TaskID string
	Tasks  []domain.Task
	Report *domain.AuditReport
	// Logs is shown when no task is selected.
	Logs []domain.LogSummary
}

func (s *Server) audit(ctx context.Context, taskID string) (*auditData, error) {
	tasks, err := s.client.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}

	d := &auditData{TaskID: taskID, Tasks: tasks}
	if taskID == "" {
		logs, err := s.client.LogsAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not list logs: %w", err)
		}
		d.Logs = newestFirst(logs, recentLimit)

		return d, nil
	}

	d.Report, err = s.client.AuditLogs(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("could not audit task logs: %w", err)
	}

	return d, nil
}

type governanceData struct {
	Proposals    []domain.Proposal
	Propagations []domain.Propagation
}

func (s *Server) governance(ctx context.Context) (*governanceData, error) {
	proposals, err := s.client.Proposals(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list proposals: %w", err)
	}
	propagations, err := s.client.Propagations(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list propagations: %w", err)
	}

	return &governanceData{
		Proposals:    newestFirst(proposals, len(proposals)),
		Propagations: propagations,
	}, nil
}
