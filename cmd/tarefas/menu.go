package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dmoraes/tarefas/internal/ui"
	"github.com/dmoraes/tarefas/task"
	"github.com/spf13/cobra"
)

// menuShell drives the interactive numbered menu. It owns the store for
// the whole session and persists on demand and on exit.
type menuShell struct {
	env   *environment
	store *task.Store
	in    *bufio.Reader
	out   io.Writer
}

func runMenu(cmd *cobra.Command, args []string) error {
	env, store, err := loadStore()
	if err != nil {
		return err
	}

	shell := &menuShell{
		env:   env,
		store: store,
		in:    bufio.NewReader(cmd.InOrStdin()),
		out:   cmd.OutOrStdout(),
	}

	// The sweep always runs once before the first menu, so stale completed
	// tasks never linger across sessions.
	shell.archiveAged()

	for {
		shell.printMenu()
		choice, err := shell.readLine("Escolha uma opção: ")
		if err != nil {
			// stdin closed: behave like option 0
			return shell.exit()
		}

		if choice == "0" {
			return shell.exit()
		}
		handler, ok := shell.handlers()[choice]
		if !ok {
			fmt.Fprintln(shell.out, ui.Error("Opção inválida. Tente novamente."))
			continue
		}

		// Every operation reports its own failure; the session never dies
		// on a bad input.
		if err := handler(); err != nil {
			fmt.Fprintln(shell.out, ui.Error(err.Error()))
			fmt.Fprintln(shell.out, "Voltando ao menu principal.")
		}
	}
}

func (m *menuShell) handlers() map[string]func() error {
	return map[string]func() error{
		"1": m.createTask,
		"2": m.nextUrgent,
		"3": m.updatePriority,
		"4": m.completeTask,
		"5": m.archiveAged,
		"6": m.deleteTask,
		"7": m.listActive,
		"8": m.listArchived,
		"9": m.saveNow,
	}
}

func (m *menuShell) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, ui.Title("GERENCIADOR DE TAREFAS"))
	fmt.Fprintln(m.out, "1 - Criar tarefa")
	fmt.Fprintln(m.out, "2 - Verificar urgência (próxima tarefa para fazer)")
	fmt.Fprintln(m.out, "3 - Atualizar prioridade")
	fmt.Fprintln(m.out, "4 - Concluir tarefa")
	fmt.Fprintln(m.out, "5 - Arquivar tarefas antigas")
	fmt.Fprintln(m.out, "6 - Excluir tarefa (exclusão lógica)")
	fmt.Fprintln(m.out, "7 - Relatório: tarefas ativas")
	fmt.Fprintln(m.out, "8 - Relatório: tarefas arquivadas")
	fmt.Fprintln(m.out, "9 - Salvar agora")
	fmt.Fprintln(m.out, "0 - Sair (salva e finaliza)")
}

func (m *menuShell) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *menuShell) readID(prompt string) (int, error) {
	raw, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("ID inválido: %q", raw)
	}
	return id, nil
}

func (m *menuShell) createTask() error {
	title, err := m.readLine("Título (obrigatório): ")
	if err != nil {
		return err
	}
	description, err := m.readLine("Descrição (opcional): ")
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, ui.Muted("Prioridades: Urgente, Alta, Média, Baixa"))
	rawPriority, err := m.readLine("Prioridade: ")
	if err != nil {
		return err
	}
	priority, err := task.NormalizePriority(rawPriority)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, ui.Muted("Origens: E-mail, Telefone, Chamado do Sistema"))
	rawOrigin, err := m.readLine("Origem: ")
	if err != nil {
		return err
	}
	origin, err := task.NormalizeOrigin(rawOrigin)
	if err != nil {
		return err
	}

	created, err := m.store.Create(title, task.CreateOptions{
		Description: description,
		Priority:    priority,
		Origin:      origin,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, ui.Success(fmt.Sprintf("Tarefa criada com sucesso. ID = %d", created.ID)))
	return nil
}

func (m *menuShell) nextUrgent() error {
	selected, err := m.store.SelectNextUrgent()
	if errors.Is(err, task.ErrNoPendingTasks) {
		fmt.Fprintln(m.out, "Não há tarefas pendentes.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Tarefa selecionada para execução:")
	printTaskDetail(m.out, *selected)
	return nil
}

func (m *menuShell) updatePriority() error {
	id, err := m.readID("Informe o ID da tarefa: ")
	if err != nil {
		return err
	}

	current, err := m.store.Get(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Prioridade atual: %s\n", current.Priority)

	raw, err := m.readLine("Nova prioridade: ")
	if err != nil {
		return err
	}
	priority, err := task.NormalizePriority(raw)
	if err != nil {
		return err
	}

	updated, err := m.store.SetPriority(id, priority)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, ui.Success(fmt.Sprintf("Prioridade da tarefa %d alterada para %s.", updated.ID, updated.Priority)))
	return nil
}

func (m *menuShell) completeTask() error {
	id, err := m.readID("Informe o ID da tarefa a concluir: ")
	if err != nil {
		return err
	}

	completed, err := m.store.Complete(id)
	if errors.Is(err, task.ErrAlreadyCompleted) {
		fmt.Fprintln(m.out, "Tarefa já está concluída.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, ui.Success(fmt.Sprintf("Tarefa %d concluída em %s.", completed.ID, *completed.CompletedAt)))
	return nil
}

func (m *menuShell) archiveAged() error {
	retention := m.env.cfg.Retention()
	moved := m.store.ArchiveAged(time.Now(), retention)
	if moved == 0 {
		fmt.Fprintln(m.out, ui.Muted("Nenhuma tarefa concluída antiga para arquivar."))
		return nil
	}

	if err := m.store.Save(m.env.files); err != nil {
		return fmt.Errorf("salvar coleções: %w", err)
	}

	fmt.Fprintln(m.out, ui.Success(fmt.Sprintf("%d tarefa(s) arquivada(s).", moved)))
	return nil
}

func (m *menuShell) deleteTask() error {
	id, err := m.readID("Informe o ID da tarefa a excluir: ")
	if err != nil {
		return err
	}

	deleted, err := m.store.Delete(id)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, ui.Success(fmt.Sprintf("Tarefa %d marcada como Excluída (exclusão lógica).", deleted.ID)))
	return nil
}

func (m *menuShell) listActive() error {
	tasks := m.store.Active()
	if len(tasks) == 0 {
		fmt.Fprintln(m.out, "Nenhuma tarefa ativa registrada.")
		return nil
	}

	for _, t := range tasks {
		printTaskDetail(m.out, t)
	}
	return nil
}

func (m *menuShell) listArchived() error {
	tasks := m.store.ArchivedReport()
	if len(tasks) == 0 {
		fmt.Fprintln(m.out, "Nenhuma tarefa arquivada (ou somente tarefas excluídas).")
		return nil
	}

	for _, t := range tasks {
		printTaskDetail(m.out, t)
	}
	return nil
}

func (m *menuShell) saveNow() error {
	if err := m.store.Save(m.env.files); err != nil {
		return fmt.Errorf("salvar coleções: %w", err)
	}
	fmt.Fprintln(m.out, ui.Success("Dados salvos com sucesso."))
	return nil
}

func (m *menuShell) exit() error {
	if err := m.store.Save(m.env.files); err != nil {
		return fmt.Errorf("salvar coleções: %w", err)
	}
	fmt.Fprintln(m.out, "Dados salvos. Encerrando programa.")
	return nil
}
