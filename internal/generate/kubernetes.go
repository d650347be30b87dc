package generate

import (
	"fmt"
	"path"
	"sort"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/yaml"

	"github.com/imamik/stackgen/internal/config"
)

const kubernetesDir = "deploy/kubernetes"

// Kubernetes generates the orchestration manifests for all services:
// one namespace per project plus a Deployment, Service and optional
// Ingress per containerized service.
func Kubernetes(spec *config.Spec) (FileMap, error) {
	files := FileMap{}

	ns := namespaceFor(spec)
	content, err := marshalManifest(ns)
	if err != nil {
		return nil, fmt.Errorf("failed to render namespace: %w", err)
	}
	files[path.Join(kubernetesDir, "namespace.yaml")] = content

	for _, svc := range spec.Services {
		deployment, err := marshalManifest(deploymentFor(spec, svc))
		if err != nil {
			return nil, fmt.Errorf("failed to render deployment for %s: %w", svc.Name, err)
		}
		files[path.Join(kubernetesDir, svc.Name, "deployment.yaml")] = deployment

		service, err := marshalManifest(serviceFor(spec, svc))
		if err != nil {
			return nil, fmt.Errorf("failed to render service for %s: %w", svc.Name, err)
		}
		files[path.Join(kubernetesDir, svc.Name, "service.yaml")] = service

		if svc.IngressHost != "" {
			ingress, err := marshalManifest(ingressFor(spec, svc))
			if err != nil {
				return nil, fmt.Errorf("failed to render ingress for %s: %w", svc.Name, err)
			}
			files[path.Join(kubernetesDir, svc.Name, "ingress.yaml")] = ingress
		}
	}

	return files, nil
}

// marshalManifest marshals a typed Kubernetes object to YAML.
func marshalManifest(obj any) (string, error) {
	data, err := yaml.Marshal(obj)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func labelsFor(spec *config.Spec, name string) map[string]string {
	return map[string]string{
		"app.kubernetes.io/name":       name,
		"app.kubernetes.io/part-of":    spec.Project,
		"app.kubernetes.io/managed-by": "stackgen",
	}
}

func namespaceFor(spec *config.Spec) *corev1.Namespace {
	return &corev1.Namespace{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Namespace",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:   spec.Project,
			Labels: labelsFor(spec, spec.Project),
		},
	}
}

func deploymentFor(spec *config.Spec, svc config.ServiceSpec) *appsv1.Deployment {
	replicas := svc.Replicas
	labels := labelsFor(spec, svc.Name)

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apps/v1",
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      svc.Name,
			Namespace: spec.Project,
			Labels:    labels,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{
				MatchLabels: map[string]string{"app.kubernetes.io/name": svc.Name},
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: labels,
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{
							Name:  svc.Name,
							Image: svc.Image,
							Ports: []corev1.ContainerPort{
								{Name: "http", ContainerPort: svc.Port},
							},
							Env: envVarsFor(svc),
						},
					},
				},
			},
		},
	}
}

// envVarsFor converts the env map to a sorted EnvVar list so output is
// deterministic.
func envVarsFor(svc config.ServiceSpec) []corev1.EnvVar {
	if len(svc.Env) == 0 {
		return nil
	}
	keys := make([]string, 0, len(svc.Env))
	for k := range svc.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vars := make([]corev1.EnvVar, 0, len(keys))
	for _, k := range keys {
		vars = append(vars, corev1.EnvVar{Name: k, Value: svc.Env[k]})
	}
	return vars
}

func serviceFor(spec *config.Spec, svc config.ServiceSpec) *corev1.Service {
	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      svc.Name,
			Namespace: spec.Project,
			Labels:    labelsFor(spec, svc.Name),
		},
		Spec: corev1.ServiceSpec{
			Selector: map[string]string{"app.kubernetes.io/name": svc.Name},
			Ports: []corev1.ServicePort{
				{
					Name:       "http",
					Port:       80,
					TargetPort: intstr.FromInt32(svc.Port),
				},
			},
		},
	}
}

func ingressFor(spec *config.Spec, svc config.ServiceSpec) *networkingv1.Ingress {
	pathType := networkingv1.PathTypePrefix

	return &networkingv1.Ingress{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "networking.k8s.io/v1",
			Kind:       "Ingress",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      svc.Name,
			Namespace: spec.Project,
			Labels:    labelsFor(spec, svc.Name),
		},
		Spec: networkingv1.IngressSpec{
			Rules: []networkingv1.IngressRule{
				{
					Host: svc.IngressHost,
					IngressRuleValue: networkingv1.IngressRuleValue{
						HTTP: &networkingv1.HTTPIngressRuleValue{
							Paths: []networkingv1.HTTPIngressPath{
								{
									Path:     "/",
									PathType: &pathType,
									Backend: networkingv1.IngressBackend{
										Service: &networkingv1.IngressServiceBackend{
											Name: svc.Name,
											Port: networkingv1.ServiceBackendPort{Number: 80},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}
